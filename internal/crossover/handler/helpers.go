package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"crossover-service/internal/nomenclature"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeCoreError maps the codec's typed errors onto HTTP statuses with
// enough structure for the caller to build an actionable message.
func writeCoreError(w http.ResponseWriter, err error) {
	var unknown *nomenclature.UnknownFamilyError
	var malformed *nomenclature.MalformedInputError
	var invalid *nomenclature.InvalidCodeError
	var missing *nomenclature.MissingAttributeError

	switch {
	case errors.As(err, &unknown):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &malformed):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":   err.Error(),
			"family":  invalid.Family,
			"segment": invalid.Segment,
			"value":   invalid.Value,
		})
	case errors.As(err, &missing):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":   err.Error(),
			"family":  missing.Family,
			"segment": missing.Segment,
		})
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func toFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return f
}
