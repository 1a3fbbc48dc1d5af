package http

import (
	"errors"
	"log"
	"strings"
	"time"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxTitleLen = 50

// Handler serves the resume store REST contract consumed by the wizard
// client: create, list by owner, get, partial update, delete.
type Handler struct {
	repo repository.ResumesRepo
}

func NewHandler(repo repository.ResumesRepo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Register(app *fiber.App) {
	app.Post("/api/user-resumes", h.Create)
	app.Get("/api/user-resumes", h.List)
	app.Get("/api/user-resumes/:id", h.Get)
	app.Put("/api/user-resumes/:id", h.Update)
	app.Delete("/api/user-resumes/:id", h.Delete)
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": fiber.Map{"message": msg}})
}

// recordJSON flattens a record into the wire shape: document fields at the
// top level plus the store-assigned identity and timestamps.
func recordJSON(r *domain.ResumeRecord) fiber.Map {
	out := fiber.Map{}
	for k, v := range r.Document() {
		out[k] = v
	}
	out["documentId"] = r.DocumentID
	out["userEmail"] = r.UserEmail
	out["userName"] = r.UserName
	out["createdAt"] = r.CreatedAt
	out["updatedAt"] = r.UpdatedAt
	return out
}

type createReq struct {
	Data struct {
		Title     string `json:"title"`
		ResumeID  string `json:"resumeId"`
		UserEmail string `json:"userEmail"`
		UserName  string `json:"userName"`
	} `json:"data"`
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req createReq
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid payload")
	}

	title := strings.TrimSpace(req.Data.Title)
	if title == "" {
		return errorJSON(c, fiber.StatusBadRequest, "title is required")
	}
	if len(title) > maxTitleLen {
		return errorJSON(c, fiber.StatusBadRequest, "title too long")
	}
	if req.Data.UserEmail == "" {
		return errorJSON(c, fiber.StatusBadRequest, "userEmail is required")
	}

	now := time.Now().UTC()
	rec := &domain.ResumeRecord{
		ID:         uuid.New(),
		DocumentID: uuid.NewString(),
		UserEmail:  req.Data.UserEmail,
		UserName:   req.Data.UserName,
		Title:      title,
		Fields:     map[string]interface{}{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	// the client correlation id is echoed back but never used as an address
	if req.Data.ResumeID != "" {
		rec.Fields["resumeId"] = req.Data.ResumeID
	}

	if err := h.repo.Insert(c.Context(), rec); err != nil {
		log.Printf("create resume failed: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "failed to create resume")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": recordJSON(rec)})
}

func (h *Handler) List(c *fiber.Ctx) error {
	email := c.Query("userEmail")
	if email == "" {
		return errorJSON(c, fiber.StatusBadRequest, "userEmail query is required")
	}
	records, err := h.repo.ListByOwner(c.Context(), email)
	if err != nil {
		log.Printf("list resumes failed: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "failed to list resumes")
	}
	out := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		out = append(out, recordJSON(r))
	}
	return c.JSON(fiber.Map{"data": out})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	rec, err := h.repo.GetByDocumentID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "resume not found")
		}
		log.Printf("get resume failed: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "failed to fetch resume")
	}
	return c.JSON(fiber.Map{"data": recordJSON(rec)})
}

type updateReq struct {
	Data map[string]interface{} `json:"data"`
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var req updateReq
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	if len(req.Data) == 0 {
		return errorJSON(c, fiber.StatusBadRequest, "no fields to update")
	}

	rec, err := h.repo.GetByDocumentID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "resume not found")
		}
		log.Printf("get resume failed: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "failed to fetch resume")
	}

	rec.ApplyPatch(req.Data)
	if err := model.ValidateDocument(rec.Document()); err != nil {
		return errorJSON(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := h.repo.Update(c.Context(), rec); err != nil {
		log.Printf("update resume failed: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "failed to update resume")
	}
	return c.JSON(fiber.Map{"data": recordJSON(rec)})
}

// Delete is idempotent: deleting an unknown id is still a success from the
// caller's perspective.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.repo.DeleteByDocumentID(c.Context(), c.Params("id")); err != nil {
		log.Printf("delete resume failed: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "failed to delete resume")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
