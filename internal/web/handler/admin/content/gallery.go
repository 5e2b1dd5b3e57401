package content

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/climacurat/climacurat/internal/db/controller/gallery"
)

// SaveGallery handles the save-gallery form submission.
func (s *Service) SaveGallery(c *fiber.Ctx) error {
	id, hasID, err := formID(c)
	if err != nil {
		return c.Redirect(RedirectTarget)
	}

	var (
		imageURL = c.FormValue("image_url")
		caption  = c.FormValue("caption")
	)

	switch {
	case c.FormValue("action") == ActionDelete:
		if !hasID {
			log.Warn().Msg("delete gallery item requested without id")
			break
		}

		if err := gallery.Delete(s.db, id); err != nil {
			log.Error().Err(err).Uint64("id", id).Msg("failed to delete gallery item")
		}
	case hasID:
		if _, err := gallery.Update(s.db, id, imageURL, caption); err != nil {
			log.Error().Err(err).Uint64("id", id).Msg("failed to update gallery item")
		}
	default:
		if _, err := gallery.Create(s.db, imageURL, caption); err != nil {
			log.Error().Err(err).Msg("failed to create gallery item")
		}
	}

	return c.Redirect(RedirectTarget)
}
