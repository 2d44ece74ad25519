package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/internal/api/presenters"
	"github.com/koolbreezeandthetrees/ScrapsApp/pkg/inventory"
)

type (
	InventoryHandler interface {
		GetInventory(c *fiber.Ctx) error
		EnsureInventory(c *fiber.Ctx) error
		AddIngredient(c *fiber.Ctx) error
		AdjustQuantity(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) userID(c *fiber.Ctx) (string, error) {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return "", domain.ErrInvalidUserID
	}
	return userID, nil
}

func (h *inventoryHandler) GetInventory(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetInventory, err)
	}

	res, err := h.inventoryService.GetInventory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetInventory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventory)
}

func (h *inventoryHandler) EnsureInventory(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateInventory, err)
	}

	if err := h.inventoryService.EnsureInventory(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateInventory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessCreateInventory)
}

func (h *inventoryHandler) AddIngredient(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	req := new(domain.AddInventoryItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	res, err := h.inventoryService.AddIngredient(c.Context(), userID, req.IngredientID)
	if err != nil {
		if errors.Is(err, domain.ErrNoInventory) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddIngredient, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddIngredient)
}

func (h *inventoryHandler) AdjustQuantity(c *fiber.Ctx) error {
	userID, err := h.userID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustQuantity, err)
	}

	ingredientID, err := parseIDParam(c, "ingredient_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustQuantity, err)
	}

	req := new(domain.AdjustQuantityRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustQuantity, err)
	}

	res, err := h.inventoryService.AdjustQuantity(c.Context(), userID, ingredientID, req.Delta)
	if err != nil {
		if errors.Is(err, domain.ErrNoInventory) || errors.Is(err, domain.ErrIngredientNotInInventory) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAdjustQuantity, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAdjustQuantity, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAdjustQuantity)
}
