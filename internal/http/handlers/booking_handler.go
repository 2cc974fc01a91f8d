package handlers

import (
	"github.com/gofiber/fiber/v2"

	"folio/internal/content"
	"folio/internal/domain"
	applog "folio/internal/log"
	"folio/internal/validate"
)

type BookingHandler struct {
	Content *content.Client
}

// Contact renders the contact page with the currently open booking slots.
func (h *BookingHandler) Contact(c *fiber.Ctx) error {
	slots, err := h.Content.Availability(c.UserContext())
	if err != nil {
		applog.Error(c, "booking.availability.load", err, nil)
		// The form still works without slots; bookings just can't pick one.
		slots = nil
	}
	open := slots[:0:0]
	for _, s := range slots {
		if s.Open {
			open = append(open, s)
		}
	}
	return render(c, "contact", fiber.Map{"Slots": open})
}

// Book creates a booking against a chosen slot.
func (h *BookingHandler) Book(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return c.Status(400).Render("contact", fiber.Map{"Err": "Please enter your name"})
	}
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return c.Status(400).Render("contact", fiber.Map{"Err": "Please enter a valid email"})
	}
	slotID, ok := validate.IntID(c.FormValue("slotId"))
	if !ok {
		return c.Status(400).Render("contact", fiber.Map{"Err": "Please pick a time slot"})
	}

	b := domain.Booking{
		SlotID:  slotID,
		Name:    name,
		Email:   email,
		Topic:   c.FormValue("topic"),
		Message: c.FormValue("message"),
	}
	created, err := h.Content.CreateBooking(c.UserContext(), b)
	if err != nil {
		applog.Error(c, "booking.create.fail", err, map[string]any{"slot": slotID})
		return c.Status(fiber.StatusBadGateway).Render("contact", fiber.Map{
			"Err": "Could not book that slot. It may have just been taken. Please pick another.",
		})
	}
	applog.Audit(c, "booking.create", map[string]any{"booking": created.ID, "slot": slotID})
	return render(c, "booking_done", fiber.Map{"Booking": created})
}
