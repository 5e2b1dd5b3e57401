package content

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/climacurat/climacurat/internal/db/controller/benefit"
)

// SaveBenefit handles the save-benefit form submission.
func (s *Service) SaveBenefit(c *fiber.Ctx) error {
	id, hasID, err := formID(c)
	if err != nil {
		return c.Redirect(RedirectTarget)
	}

	var (
		icon        = c.FormValue("icon")
		color       = c.FormValue("color")
		title       = c.FormValue("title")
		description = c.FormValue("description")
	)

	switch {
	case c.FormValue("action") == ActionDelete:
		if !hasID {
			log.Warn().Msg("delete benefit requested without id")
			break
		}

		if err := benefit.Delete(s.db, id); err != nil {
			log.Error().Err(err).Uint64("id", id).Msg("failed to delete benefit")
		}
	case hasID:
		if _, err := benefit.Update(s.db, id, icon, color, title, description); err != nil {
			log.Error().Err(err).Uint64("id", id).Msg("failed to update benefit")
		}
	default:
		if _, err := benefit.Create(s.db, icon, color, title, description); err != nil {
			log.Error().Err(err).Msg("failed to create benefit")
		}
	}

	return c.Redirect(RedirectTarget)
}
