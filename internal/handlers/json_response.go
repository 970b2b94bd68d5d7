package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"cwdp/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message})
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{"error": code, "message": message})
}

// writeRepoError maps a repository error for entity to a JSON response.
// sql.ErrNoRows becomes a 404; anything else is logged and reported as a
// generic failure.
func writeRepoError(w http.ResponseWriter, err error, entity, action string) {
	code := strings.ReplaceAll(entity, " ", "_")
	if errors.Is(err, sql.ErrNoRows) {
		writeJSONErrorResponse(w, http.StatusNotFound, code+"_not_found", strings.ToUpper(entity[:1])+entity[1:]+" not found")
		return
	}
	log.Printf("Failed to %s %s: %v", action, entity, err)
	writeJSONErrorResponse(w, http.StatusInternalServerError, action+"_"+code+"_failed", "Failed to "+action+" "+entity)
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "schema"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "\r\n")
	})
	return v
}

// decodeAndValidate reads a JSON body into dst and validates it. It writes
// the 400 response itself and reports false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any) bool {
	if !decodeJSON(w, r, dst) {
		return false
	}
	if err := v.Struct(dst); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", validationMessage(err))
		return false
	}
	return true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return false
	}
	return true
}

// listCached serves a collection through the query cache. A nil result is
// written as an empty array.
func listCached[T any](w http.ResponseWriter, r *http.Request, cache *services.QueryCache, key, entities string, load func(context.Context) ([]T, error)) {
	list, err := services.Fetch(r.Context(), cache, key, load)
	if err != nil {
		log.Printf("Failed to list %ss: %v", entities, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_"+strings.ReplaceAll(entities, " ", "_")+"s_failed", "Failed to list "+entities+"s")
		return
	}
	if list == nil {
		list = []T{}
	}
	writeJSON(w, http.StatusOK, list)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "url":
		return fe.Field() + " must be a valid URL"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "singleline":
		return fe.Field() + " must not contain line breaks"
	default:
		return fe.Field() + " is invalid"
	}
}

// fieldErrors returns Portuguese messages keyed by field name, for the
// public contact form.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "Campo obrigatório"
		case "email":
			out[fe.Field()] = "Email inválido"
		case "max":
			out[fe.Field()] = "Texto demasiado longo"
		default:
			out[fe.Field()] = "Valor inválido"
		}
	}
	return out
}
