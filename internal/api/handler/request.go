package handler

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	"github.com/vfg2006/kpis-manager-api/pkg/apiErrors"
	"github.com/vfg2006/kpis-manager-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = newValidator()

// now é sobrescrito nos testes
var now = time.Now

// ValidationDetail descreve um campo rejeitado pela validação
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Usa o nome do campo no JSON nas mensagens de erro
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError converte o erro dos serviços no erro padronizado da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var kerr *domain.KPIError
	if errors.As(err, &kerr) {
		apiErrors.WriteError(w, kerr.Code, kerr.Details, nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

// decodeAndValidate lê o corpo JSON da requisição e aplica as regras de validação
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
		return false
	}

	err := validate.Struct(dst)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição inválida", nil)
		return false
	}

	code := apiErrors.ErrInvalidRequest
	details := make([]ValidationDetail, 0, len(validationErrors))
	for _, e := range validationErrors {
		if e.Tag() == "required" {
			code = apiErrors.ErrMissingRequiredData
		}
		details = append(details, ValidationDetail{Field: e.Field(), Message: validationMessage(e)})
	}

	apiErrors.WriteError(w, code, "Falha na validação da requisição", details)
	return false
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Campo obrigatório"
	case "gt":
		return "Deve ser maior que " + e.Param()
	case "gte":
		return "Deve ser maior ou igual a " + e.Param()
	case "lte":
		return "Deve ser menor ou igual a " + e.Param()
	case "min":
		return "Deve ter no mínimo " + e.Param() + " caracteres"
	case "max":
		return "Deve ter no máximo " + e.Param() + " caracteres"
	case "datetime":
		return "Data deve estar no formato " + e.Param()
	default:
		return "Valor inválido"
	}
}

// parseID lê um identificador numérico positivo dos parâmetros da rota
func parseID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não fornecido", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", nil)
		return 0, false
	}

	return id, true
}

// parseOptionalInt lê um inteiro da query string, nil quando ausente
func parseOptionalInt(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return nil, false
	}

	return &value, true
}

// parsePeriod lê year e month da query string; na ausência usa o mês corrente
func parsePeriod(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, ok := parseOptionalInt(w, r, "year")
	if !ok {
		return 0, 0, false
	}
	month, ok := parseOptionalInt(w, r, "month")
	if !ok {
		return 0, 0, false
	}

	today := now()
	if year == nil {
		y := today.Year()
		year = &y
	}
	if month == nil {
		m := int(today.Month())
		month = &m
	}

	return *year, *month, true
}
