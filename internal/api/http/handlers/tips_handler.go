package handlers

import "github.com/gofiber/fiber/v2"

// tip is a fixed first-aid advisory entry.
type tip struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

var firstAidTips = []tip{
	{
		Title: "Minor cuts",
		Text:  "Clean the area with water, apply gentle pressure to stop bleeding, and cover with a clean bandage.",
	},
	{
		Title: "Fever care",
		Text:  "Rest, drink plenty of fluids, and monitor temperature. Seek medical help if very high or persistent.",
	},
	{
		Title: "Fainting",
		Text:  "Lay the person flat, raise their legs slightly, and ensure fresh air while checking for breathing.",
	},
}

// TipsHandler serves the static first-aid advisory content.
type TipsHandler struct{}

// NewTipsHandler constructs handler.
func NewTipsHandler() *TipsHandler {
	return &TipsHandler{}
}

// List handles GET /tips.
func (h *TipsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{"tips": firstAidTips}})
}
