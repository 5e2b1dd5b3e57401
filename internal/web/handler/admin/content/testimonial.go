package content

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/climacurat/climacurat/internal/db/controller/testimonial"
)

// SaveTestimonial handles the save-testimonial form submission.
func (s *Service) SaveTestimonial(c *fiber.Ctx) error {
	id, hasID, err := formID(c)
	if err != nil {
		return c.Redirect(RedirectTarget)
	}

	var (
		clientName = c.FormValue("client_name")
		clientType = c.FormValue("client_type")
		feedback   = c.FormValue("feedback")
		rating     = formInt(c, "rating")
	)

	switch {
	case c.FormValue("action") == ActionDelete:
		if !hasID {
			log.Warn().Msg("delete testimonial requested without id")
			break
		}

		if err := testimonial.Delete(s.db, id); err != nil {
			log.Error().Err(err).Uint64("id", id).Msg("failed to delete testimonial")
		}
	case hasID:
		if _, err := testimonial.Update(s.db, id, clientName, clientType, feedback, rating); err != nil {
			log.Error().Err(err).Uint64("id", id).Msg("failed to update testimonial")
		}
	default:
		if _, err := testimonial.Create(s.db, clientName, clientType, feedback, rating); err != nil {
			log.Error().Err(err).Msg("failed to create testimonial")
		}
	}

	return c.Redirect(RedirectTarget)
}
