package contract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/draftforge/contract-backend/internal/entity"
	"github.com/draftforge/contract-backend/internal/pkg/formatter"
	"github.com/draftforge/contract-backend/internal/pkg/logger"
	"github.com/draftforge/contract-backend/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200

	apiVersion = "1.0.0"
)

type Handler struct {
	usecase    ContractUsecase
	formatters *formatter.Factory
}

func NewHandler(usecase ContractUsecase, formatters *formatter.Factory) *Handler {
	return &Handler{
		usecase:    usecase,
		formatters: formatters,
	}
}

// GenerateContract handles POST /api/generate-contract - Stream a new contract
//
// The response is a stream of "data: <fragment>\n\n" lines followed by a
// single "[END_OF_DOC=<contract_id>]" sentinel on success. Errors that occur
// after streaming has started are delivered in-band as a "data: Error: ..."
// line, matching what streaming clients expect.
func (h *Handler) GenerateContract(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateContract")

	var req entity.GenerateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.respondError(ctx, w, http.StatusInternalServerError, "streaming unsupported", errors.New("response writer does not implement http.Flusher"))
		return
	}

	// Headers go out lazily with the first fragment, so that failures before
	// any content was produced can still use a real HTTP status code.
	streaming := false
	startStream := func() {
		if streaming {
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		streaming = true
	}

	contractID, err := h.usecase.GenerateContract(ctx, &req, func(fragment string) error {
		startStream()
		if _, werr := fmt.Fprintf(w, "data: %s\n\n", fragment); werr != nil {
			return werr
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		if !streaming && isValidationError(err) {
			h.handleUsecaseError(ctx, w, err)
			return
		}

		ctxzap.Error(ctx, "contract generation stream failed", zap.Error(err))
		startStream()
		fmt.Fprintf(w, "data: Error: %s\n\n", err.Error())
		flusher.Flush()
		return
	}

	startStream()
	fmt.Fprintf(w, "[END_OF_DOC=%s]", contractID)
	flusher.Flush()
}

// GetFullContract handles POST /api/generate-contract-full - Retrieve contract by ID
func (h *Handler) GetFullContract(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetFullContract")

	var req entity.RetrieveContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctx = logger.AddFields(ctx, zap.String("contract_id", req.ContractID))

	contract, err := h.usecase.GetContract(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "contract retrieved", zap.Int("total_sections", contract.TotalSections))

	h.respondJSON(w, http.StatusOK, toContractDTO(contract, true))
}

// DownloadContract handles POST /api/download-contract - Download contract as a file
func (h *Handler) DownloadContract(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DownloadContract")

	var req entity.DownloadContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctx = logger.AddFields(ctx,
		zap.String("contract_id", req.ContractID),
		zap.String("format", string(req.Format)),
	)

	contract, err := h.usecase.DownloadContract(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	f, err := h.formatters.Create(req.Format)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "unsupported format", err)
		return
	}

	body, err := f.Format(contract)
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, "failed to render contract", err)
		return
	}

	filename := fmt.Sprintf("contract_%s_%s%s", contract.ContractType, shortID(contract.ID), f.FileExtension())

	ctxzap.Info(ctx, "contract rendered for download", zap.Int("size_bytes", len(body)))

	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// ListContracts handles GET /api/contracts - List contracts with pagination
func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListContracts")

	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil || limit < 1 || limit > maxListLimit {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid limit", fmt.Errorf("limit must be between 1 and %d", maxListLimit))
		return
	}

	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid offset", errors.New("offset must be non-negative"))
		return
	}

	var contractType *entity.ContractType
	if raw := r.URL.Query().Get("contract_type"); raw != "" {
		ct := entity.ContractType(raw)
		if err := ct.Validate(); err != nil {
			h.respondError(ctx, w, http.StatusBadRequest, "invalid contract_type", err)
			return
		}
		contractType = &ct
	}

	contracts, total, err := h.usecase.ListContracts(ctx, limit, offset, contractType)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	dtos := make([]*entity.ContractDTO, 0, len(contracts))
	for _, c := range contracts {
		dtos = append(dtos, toContractDTO(c, false))
	}

	ctxzap.Info(ctx, "contracts listed",
		zap.Int("count", len(dtos)),
		zap.Int64("total", total),
	)

	h.respondJSON(w, http.StatusOK, entity.ListContractsResponse{
		Contracts: dtos,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	})
}

// DeleteContract handles DELETE /api/contracts/{id} - Delete contract by ID
func (h *Handler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "id")

	ctx := logger.AddFields(r.Context(),
		zap.String("contract_id", contractID),
		zap.String("action", "DeleteContract"),
	)

	if err := h.usecase.DeleteContract(ctx, contractID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message":     "Contract deleted successfully",
		"contract_id": contractID,
	})
}

// GetContractTypes handles GET /api/contract-types - Available contract types
func (h *Handler) GetContractTypes(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"contract_types": toContractTypeDTOs(h.usecase.ContractTypes()),
	})
}

// ContractStats handles GET /api/contracts/stats - Database statistics
func (h *Handler) ContractStats(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ContractStats")

	stats, err := h.usecase.ContractStats(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

// Health handles GET /health - Health check with per-dependency status
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	services := h.usecase.Health(r.Context())

	status := "healthy"
	for _, s := range services {
		if s != "healthy" {
			status = "degraded"
			break
		}
	}

	h.respondJSON(w, http.StatusOK, entity.HealthResponse{
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   apiVersion,
		Services:  services,
	})
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func isValidationError(err error) bool {
	return errors.Is(err, entity.ErrMissingField) ||
		errors.Is(err, entity.ErrInvalidParameter) ||
		errors.Is(err, entity.ErrInvalidFormat) ||
		errors.Is(err, entity.ErrInvalidContractType)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	response.JSON(w, status, data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	ctxzap.Error(ctx, message, zap.Error(err))
	h.respondJSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrContractNotFound) {
		h.respondError(ctx, w, http.StatusNotFound, "contract not found", err)
	} else if isValidationError(err) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else if errors.Is(err, entity.ErrEmptyCompletion) || errors.Is(err, entity.ErrGenerationFailed) {
		h.respondError(ctx, w, http.StatusBadGateway, "generation failed", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
