package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/carvoy/carvoy_backend/internal/utils"
)

// registerCustomValidators wires domain-specific binding tags into gin's
// validator engine. Safe to call more than once.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// tenantkey accepts a bare lowercase hostname only: anything that the
	// normalizer would rewrite (scheme, path, port, casing) is rejected so
	// stored keys always match what the resolver looks up.
	_ = v.RegisterValidation("tenantkey", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		normalized := utils.NormalizeDomainKey(raw)
		return normalized != "" && normalized == raw
	})
}
