package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gestaopub/contratos-service/internal/auth"
	"github.com/gestaopub/contratos-service/internal/derive"
	"github.com/gestaopub/contratos-service/internal/excel"
	"github.com/gestaopub/contratos-service/internal/http/middleware"
	"github.com/gestaopub/contratos-service/internal/model"
	"github.com/gestaopub/contratos-service/internal/pdf"
	"github.com/gestaopub/contratos-service/internal/service"
	"github.com/gestaopub/contratos-service/internal/session"
	"github.com/gestaopub/contratos-service/internal/validate"
)

// Deps collects everything the handler serves.
type Deps struct {
	Suppliers     *service.SupplierService
	Departments   *service.DepartmentService
	Contracts     *service.ContractService
	Payments      *service.PaymentService
	Invoices      *service.InvoiceService
	Commitments   *service.CommitmentService
	Dashboard     *service.DashboardService
	Sessions      *session.Manager
	Tokens        *auth.Issuer
	Notifications *service.Buffer
	Exporter      *excel.Generator
	Documents     *pdf.Generator
	Log           zerolog.Logger
}

type Handler struct {
	deps Deps
	log  zerolog.Logger
}

func NewHandler(deps Deps) *Handler {
	return &Handler{deps: deps, log: deps.Log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/auth/login", h.login)
	router.POST("/auth/register", h.registerUser)

	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/auth/me", h.me)
	protected.PUT("/auth/profile", h.updateProfile)
	protected.POST("/auth/logout", h.logout)

	protected.GET("/suppliers", h.listSuppliers)
	protected.POST("/suppliers", h.createSupplier)
	protected.PUT("/suppliers/:id", h.updateSupplier)
	protected.DELETE("/suppliers/:id", h.deleteSupplier)

	protected.GET("/departments", h.listDepartments)
	protected.POST("/departments", h.createDepartment)
	protected.PUT("/departments/:id", h.updateDepartment)
	protected.DELETE("/departments/:id", h.deleteDepartment)

	protected.GET("/contracts", h.listContracts)
	protected.GET("/contracts/expiring", h.expiringContracts)
	protected.GET("/contracts/:id", h.getContract)
	protected.GET("/contracts/:id/document", h.contractDocument)
	protected.POST("/contracts", h.createContract)
	protected.POST("/contracts/export", h.exportContracts)
	protected.PUT("/contracts/:id", h.updateContract)
	protected.DELETE("/contracts/:id", h.deleteContract)

	protected.GET("/payments", h.listPayments)
	protected.POST("/payments", h.createPayment)
	protected.PUT("/payments/:id", h.updatePayment)
	protected.DELETE("/payments/:id", h.deletePayment)

	protected.GET("/invoices", h.listInvoices)
	protected.POST("/invoices", h.createInvoice)
	protected.PUT("/invoices/:id", h.updateInvoice)
	protected.DELETE("/invoices/:id", h.deleteInvoice)

	protected.GET("/commitments", h.listCommitments)
	protected.GET("/commitments/stats", h.commitmentStats)
	protected.POST("/commitments", h.createCommitment)
	protected.PUT("/commitments/:id", h.updateCommitment)
	protected.DELETE("/commitments/:id", h.deleteCommitment)

	protected.GET("/dashboard", h.dashboard)
}

// Auth

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.deps.Sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.handleError(c, err)
		return
	}

	token, err := h.deps.Tokens.Issue(user)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
}

func (h *Handler) registerUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.deps.Sessions.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.deps.Tokens.Issue(user)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (h *Handler) me(c *gin.Context) {
	user, ok := h.deps.Sessions.Current()
	if !ok {
		// Token is valid but the in-memory session was lost (restart).
		principal, _ := middleware.MustPrincipal(c)
		user = model.User{ID: principal.UserID, Name: principal.Name, Email: principal.Email, Role: principal.Role}
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req session.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.deps.Sessions.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) logout(c *gin.Context) {
	h.deps.Sessions.Logout()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Suppliers

func (h *Handler) listSuppliers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.deps.Suppliers.List()})
}

func (h *Handler) createSupplier(c *gin.Context) {
	var input service.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supplier, err := h.deps.Suppliers.Create(input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.mutated(c, http.StatusCreated, "supplier", supplier)
}

func (h *Handler) updateSupplier(c *gin.Context) {
	var input service.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supplier, err := h.deps.Suppliers.Update(c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.mutated(c, http.StatusOK, "supplier", supplier)
}

func (h *Handler) deleteSupplier(c *gin.Context) {
	h.deps.Suppliers.Delete(c.Param("id"))
	h.mutated(c, http.StatusOK, "status", "ok")
}

// Departments

func (h *Handler) listDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.deps.Departments.List()})
}

func (h *Handler) createDepartment(c *gin.Context) {
	var input service.DepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	department, err := h.deps.Departments.Create(input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.mutated(c, http.StatusCreated, "department", department)
}

func (h *Handler) updateDepartment(c *gin.Context) {
	var input service.DepartmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	department, err := h.deps.Departments.Update(c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.mutated(c, http.StatusOK, "department", department)
}

func (h *Handler) deleteDepartment(c *gin.Context) {
	h.deps.Departments.Delete(c.Param("id"))
	h.mutated(c, http.StatusOK, "status", "ok")
}

// Contracts

func (h *Handler) listContracts(c *gin.Context) {
	filter := contractFilterFromQuery(c)
	c.JSON(http.StatusOK, gin.H{"items": h.deps.Contracts.List(filter)})
}

func (h *Handler) getContract(c *gin.Context) {
	contract, err := h.deps.Contracts.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contract": contract})
}

func (h *Handler) expiringContracts(c *gin.Context) {
	days := derive.DefaultExpiringDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
			return
		}
		days = parsed
	}
	c.JSON(http.StatusOK, gin.H{"items": h.deps.Contracts.Expiring(days, model.Today())})
}

func (h *Handler) createContract(c *gin.Context) {
	var input service.ContractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contract, err := h.deps.Contracts.Create(input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.mutated(c, http.StatusCreated, "contract", contract)
}

func (h *Handler) updateContract(c *gin.Context) {
	var input service.ContractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contract, err := h.deps.Contracts.Update(c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.mutated(c, http.StatusOK, "contract", contract)
}

func (h *Handler) deleteContract(c *gin.Context) {
	h.deps.Contracts.Delete(c.Param("id"))
	h.mutated(c, http.StatusOK, "status", "ok")
}

type exportContractsRequest struct {
	Query        string `json:"query"`
	Status       string `json:"status"`
	DepartmentID string `json:"department_id"`
	SupplierID   string `json:"supplier_id"`
}

func (h *Handler) exportContracts(c *gin.Context) {
	// An empty body exports the unfiltered register.
	var req exportContractsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today := model.Today()
	register := excel.ContractRegister{
		Stats: h.deps.Dashboard.Stats(today),
		Contracts: h.deps.Contracts.List(derive.ContractFilter{
			Query:        req.Query,
			Status:       model.ContractStatus(req.Status),
			DepartmentID: req.DepartmentID,
			SupplierID:   req.SupplierID,
		}),
		GeneratedAt: today,
	}

	content, err := h.deps.Exporter.Generate(register)
	if err != nil {
		h.handleError(c, err)
		return
	}

	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+excel.FileName(today)+"\"")
	c.Data(http.StatusOK, contentType, content)
}

func (h *Handler) contractDocument(c *gin.Context) {
	contract, err := h.deps.Contracts.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	payments := make([]model.Payment, 0)
	totalPaid := 0.0
	for _, payment := range h.deps.Payments.List() {
		if payment.Contract.ID == contract.ID {
			payments = append(payments, payment)
			totalPaid += payment.Amount
		}
	}

	content, err := h.deps.Documents.Generate(pdf.ContractStatement{
		Contract:  contract,
		Payments:  payments,
		TotalPaid: totalPaid,
		IssuedAt:  model.Today(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+pdf.FileName(contract)+"\"")
	c.Data(http.StatusOK, "application/pdf", content)
}

// Payments

func (h *Handler) listPayments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.deps.Payments.List()})
}

func (h *Handler) createPayment(c *gin.Context) {
	var input service.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := h.deps.Payments.Create(input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.mutated(c, http.StatusCreated, "payment", payment)
}

func (h *Handler) updatePayment(c *gin.Context) {
	var input service.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := h.deps.Payments.Update(c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.mutated(c, http.StatusOK, "payment", payment)
}

func (h *Handler) deletePayment(c *gin.Context) {
	h.deps.Payments.Delete(c.Param("id"))
	h.mutated(c, http.StatusOK, "status", "ok")
}

// Invoices

func (h *Handler) listInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.deps.Invoices.List()})
}

func (h *Handler) createInvoice(c *gin.Context) {
	var input service.InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	invoice, err := h.deps.Invoices.Create(input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.mutated(c, http.StatusCreated, "invoice", invoice)
}

func (h *Handler) updateInvoice(c *gin.Context) {
	var input service.InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	invoice, err := h.deps.Invoices.Update(c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.mutated(c, http.StatusOK, "invoice", invoice)
}

func (h *Handler) deleteInvoice(c *gin.Context) {
	h.deps.Invoices.Delete(c.Param("id"))
	h.mutated(c, http.StatusOK, "status", "ok")
}

// Commitments

func (h *Handler) listCommitments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.deps.Commitments.List()})
}

func (h *Handler) commitmentStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Commitments.Stats())
}

func (h *Handler) createCommitment(c *gin.Context) {
	var input service.CommitmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	commitment, err := h.deps.Commitments.Create(input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.mutated(c, http.StatusCreated, "commitment", commitment)
}

func (h *Handler) updateCommitment(c *gin.Context) {
	var input service.CommitmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	commitment, err := h.deps.Commitments.Update(c.Param("id"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.mutated(c, http.StatusOK, "commitment", commitment)
}

func (h *Handler) deleteCommitment(c *gin.Context) {
	h.deps.Commitments.Delete(c.Param("id"))
	h.mutated(c, http.StatusOK, "status", "ok")
}

// Dashboard

func (h *Handler) dashboard(c *gin.Context) {
	today := model.Today()
	c.JSON(http.StatusOK, gin.H{
		"stats":            h.deps.Dashboard.Stats(today),
		"expiring":         h.deps.Dashboard.Expiring(today),
		"recent_contracts": h.deps.Dashboard.RecentContracts(5),
	})
}

// Helpers

func contractFilterFromQuery(c *gin.Context) derive.ContractFilter {
	return derive.ContractFilter{
		Query:        strings.TrimSpace(c.Query("q")),
		Status:       model.ContractStatus(strings.TrimSpace(c.Query("status"))),
		DepartmentID: strings.TrimSpace(c.Query("department_id")),
		SupplierID:   strings.TrimSpace(c.Query("supplier_id")),
	}
}

// mutated writes a mutation response, attaching the buffered notification so
// the client can toast it.
func (h *Handler) mutated(c *gin.Context, status int, key string, value any) {
	body := gin.H{key: value}
	if notification, ok := h.deps.Notifications.Pop(); ok {
		body["notification"] = notification
	}
	c.JSON(status, body)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var validationErr *validate.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validação falhou", "fields": validationErr.Fields})
	case errors.Is(err, service.ErrReferenceNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
