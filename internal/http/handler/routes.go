package handler

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"noodlebar/internal/model"
	"noodlebar/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; they parse, delegate, and translate
// service errors to the standard envelope.
func RegisterRoutes(app *fiber.App, client *mongo.Client, menuSvc service.MenuService, orderSvc service.OrderService) {
	// Health endpoint: checks MongoDB connectivity only. The status region is
	// in-process and cannot be unhealthy on its own.
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Search menu items by ingredient name. Registered before /menu/:id so the
	// literal segment wins.
	app.Get("/menu/search", func(c *fiber.Ctx) error {
		raw := c.Context().QueryArgs().PeekMulti("ingredient")
		if len(raw) == 0 {
			return writeError(c, fiber.StatusBadRequest, "INGREDIENT_REQUIRED", "at least one ingredient is required")
		}
		names := make([]string, 0, len(raw))
		for _, b := range raw {
			if len(b) > 0 {
				names = append(names, string(b))
			}
		}

		items, err := menuSvc.FindByIngredients(c.UserContext(), names...)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": items})
	})

	// Ingredient usage analysis (MapReduce, runs on the database server)
	app.Get("/menu/analysis/ingredients", func(c *fiber.Ctx) error {
		counts, err := menuSvc.AnalyseIngredients(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": counts})
	})

	// List menu items with limit & offset
	app.Get("/menu", func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := menuSvc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	})

	// Create menu item
	app.Post("/menu", func(c *fiber.Ctx) error {
		var item model.MenuItem
		if err := c.BodyParser(&item); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		stored, err := menuSvc.Create(c.UserContext(), &item)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNameRequired):
				return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "name is required")
			case errors.Is(err, service.ErrDuplicateName):
				return writeError(c, fiber.StatusConflict, "DUPLICATE_NAME", "menu item name already exists")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	})

	// Get menu item by ID
	app.Get("/menu/:id", func(c *fiber.Ctx) error {
		item, err := menuSvc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "menu item not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(item)
	})

	// Delete menu item by ID
	app.Delete("/menu/:id", func(c *fiber.Ctx) error {
		if err := menuSvc.Delete(c.UserContext(), c.Params("id")); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "menu item not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Attach a photo to a menu item (multipart/form-data, field name: photo)
	app.Post("/menu/:id/photo", func(c *fiber.Ctx) error {
		fh, err := c.FormFile("photo")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "PHOTO_REQUIRED", "photo is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "PHOTO_OPEN_ERROR", "cannot open uploaded photo")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		item, err := menuSvc.AttachPhoto(c.UserContext(), c.Params("id"), f, fh.Filename, ct, fh.Size)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "menu item not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	})

	// Redirect to a time-limited download URL for the item's photo
	app.Get("/menu/:id/photo", func(c *fiber.Ctx) error {
		url, err := menuSvc.PhotoURL(c.UserContext(), c.Params("id"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "menu item not found")
			case errors.Is(err, service.ErrNoPhoto):
				return writeError(c, fiber.StatusNotFound, "PHOTO_NOT_FOUND", "menu item has no photo")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Redirect(url, fiber.StatusFound)
	})

	// List orders with limit & offset
	app.Get("/orders", func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := orderSvc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	})

	// Place a new order
	app.Post("/orders", func(c *fiber.Ctx) error {
		var order model.Order
		if err := c.BodyParser(&order); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		stored, err := orderSvc.Place(c.UserContext(), &order)
		if err != nil {
			if errors.Is(err, service.ErrNoItems) {
				return writeError(c, fiber.StatusBadRequest, "ITEMS_REQUIRED", "order must contain at least one item")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	})

	// Get order by ID
	app.Get("/orders/:id", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		order, err := orderSvc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrOrderNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "order not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(order)
	})

	// Latest status for an order
	app.Get("/orders/:id/status", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		status, err := orderSvc.Status(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrStatusNotFound) {
				return writeError(c, fiber.StatusNotFound, "STATUS_NOT_FOUND", "order has no status yet")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(status)
	})

	// Full status history for an order, newest first
	app.Get("/orders/:id/status/history", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		history, err := orderSvc.StatusHistory(c.UserContext(), id)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": history})
	})

	// Append a status entry to an order
	app.Put("/orders/:id/status", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var body struct {
			Status string `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		status, err := orderSvc.SetStatus(c.UserContext(), id, body.Status)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnknownStatus):
				return writeError(c, fiber.StatusBadRequest, "UNKNOWN_STATUS", "unknown order status")
			case errors.Is(err, service.ErrOrderNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "order not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(status)
	})

	// Cancel an order
	app.Delete("/orders/:id", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		status, err := orderSvc.Cancel(c.UserContext(), id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrOrderNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "order not found")
			case errors.Is(err, service.ErrOrderClosed):
				return writeError(c, fiber.StatusConflict, "ORDER_CLOSED", "order already delivered or cancelled")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(status)
	})
}
