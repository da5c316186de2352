package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rkabera/momotrack/internal/core/domain"
	portssvc "github.com/rkabera/momotrack/internal/core/ports/services"
)

// RegisterHandlers wires all API routes onto the engine.
func RegisterHandlers(r *gin.Engine, reportingService portssvc.ReportingSvcFacade) {
	registerCustomValidations()

	r.GET("/", GetHome)

	api := r.Group("/api")
	registerReportingRoutes(api, reportingService)
}

// registerCustomValidations adds the txtype rule used by listing requests.
// "all" is accepted as the no-filter sentinel the dashboard sends.
func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("txtype", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" || value == "all" {
			return true
		}
		return domain.TransactionType(value).IsValid()
	})
}
