package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/koolbreezeandthetrees/ScrapsApp/domain"
	"github.com/koolbreezeandthetrees/ScrapsApp/internal/api/presenters"
	"github.com/koolbreezeandthetrees/ScrapsApp/pkg/reference"
)

type (
	ReferenceHandler interface {
		GetUnits(c *fiber.Ctx) error
		CreateUnit(c *fiber.Ctx) error
		GetColors(c *fiber.Ctx) error
		CreateColor(c *fiber.Ctx) error
		GetIngredientCategories(c *fiber.Ctx) error
		CreateIngredientCategory(c *fiber.Ctx) error
		GetRecipeCategories(c *fiber.Ctx) error
		CreateRecipeCategory(c *fiber.Ctx) error
	}

	referenceHandler struct {
		referenceService reference.ReferenceService
		validator        *validator.Validate
	}
)

func NewReferenceHandler(referenceService reference.ReferenceService, validator *validator.Validate) ReferenceHandler {
	return &referenceHandler{
		referenceService: referenceService,
		validator:        validator,
	}
}

func (h *referenceHandler) GetUnits(c *fiber.Ctx) error {
	res, err := h.referenceService.GetUnits(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUnits, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUnits)
}

func (h *referenceHandler) CreateUnit(c *fiber.Ctx) error {
	req := new(domain.CreateUnitRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateUnit, err)
	}

	res, err := h.referenceService.CreateUnit(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateUnit, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateUnit)
}

func (h *referenceHandler) GetColors(c *fiber.Ctx) error {
	res, err := h.referenceService.GetColors(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetColors, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetColors)
}

func (h *referenceHandler) CreateColor(c *fiber.Ctx) error {
	req := new(domain.CreateColorRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateColor, err)
	}

	res, err := h.referenceService.CreateColor(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateColor, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateColor)
}

func (h *referenceHandler) GetIngredientCategories(c *fiber.Ctx) error {
	res, err := h.referenceService.GetIngredientCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetIngredientCategories, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredientCategories)
}

func (h *referenceHandler) CreateIngredientCategory(c *fiber.Ctx) error {
	req := new(domain.CreateIngredientCategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.referenceService.CreateIngredientCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *referenceHandler) GetRecipeCategories(c *fiber.Ctx) error {
	res, err := h.referenceService.GetRecipeCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeCategories, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeCategories)
}

func (h *referenceHandler) CreateRecipeCategory(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeCategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.referenceService.CreateRecipeCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}
