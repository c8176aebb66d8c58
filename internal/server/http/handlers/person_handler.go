package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/personauth/internal/domain/errors"
	"github.com/polkiloo/personauth/internal/domain/model"
	"github.com/polkiloo/personauth/internal/server/http/dto"
)

// PersonHandler serves the person CRUD endpoints.
type PersonHandler struct {
	facade PersonFacade
}

// NewPersonHandler constructs PersonHandler.
func NewPersonHandler(facade PersonFacade) *PersonHandler {
	return &PersonHandler{facade: facade}
}

// List handles GET /api/v1/person.
func (h *PersonHandler) List(c *gin.Context) {
	persons, err := h.facade.ListPersons(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	response := make([]dto.PersonResponse, 0, len(persons))
	for _, p := range persons {
		response = append(response, toPersonResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/person/:id.
func (h *PersonHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	person, err := h.facade.GetPerson(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toPersonResponse(*person))
}

// Create handles POST /api/v1/person.
func (h *PersonHandler) Create(c *gin.Context) {
	var req dto.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	person, err := h.facade.CreatePerson(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPersonResponse(*person))
}

// Update handles PUT /api/v1/person.
func (h *PersonHandler) Update(c *gin.Context) {
	var req dto.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	person, err := h.facade.UpdatePerson(c.Request.Context(), model.Person{ID: req.ID, Login: req.Login, Password: req.Password})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toPersonResponse(*person))
}

// Delete handles DELETE /api/v1/person/:id.
func (h *PersonHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeletePerson(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrInvalidPerson):
		c.Status(http.StatusBadRequest)
	default:
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
	}
}
