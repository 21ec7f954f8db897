package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"crossover-service/internal/config"
	"crossover-service/internal/crossover/model"
	"crossover-service/internal/crossover/service"
	"crossover-service/internal/fileio"
	"crossover-service/internal/nomenclature"
)

type decodeRequest struct {
	Model  string `json:"model"`
	Family string `json:"family,omitempty"`
}

// Decode translates a third-party model number into a structured spec.
// Family is optional; without it the family is inferred from the prefix.
func Decode(reg *nomenclature.Registry, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req decodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}

		var (
			dec nomenclature.Decoded
			err error
		)
		if req.Family != "" {
			dec, err = reg.Decode(req.Model, req.Family)
		} else {
			dec, err = reg.DecodeAuto(req.Model)
		}
		if err != nil {
			writeCoreError(w, err)
			return
		}

		logger.Debug().Str("model", dec.Spec.Model).Str("family", dec.Spec.Family).
			Strs("low_confidence", dec.LowConfidence).Msg("decode")
		writeJSON(w, http.StatusOK, dec)
	}
}

type encodeRequest struct {
	Family     string         `json:"family"`
	Strict     bool           `json:"strict,omitempty"`
	Attributes model.UnitSpec `json:"attributes"`
}

type encodeResponse struct {
	Model string `json:"model"`
}

// Encode assembles a catalog model number from selected attributes. The
// builder UI calls this on every change to keep its preview live, so invalid
// combinations must come back as structured 422s it can show inline.
func Encode(reg *nomenclature.Registry, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req encodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		if req.Family == "" {
			writeError(w, http.StatusBadRequest, "family is required")
			return
		}

		modelNumber, err := reg.Encode(req.Family, req.Attributes, req.Strict)
		if err != nil {
			writeCoreError(w, err)
			return
		}
		logger.Debug().Str("family", req.Family).Str("model", modelNumber).Msg("encode")
		writeJSON(w, http.StatusOK, encodeResponse{Model: modelNumber})
	}
}

// Crossover runs the replacement search: decode the original model number,
// ingest the uploaded catalog, then classify and score every candidate.
func Crossover(cfg config.Config, reg *nomenclature.Registry, weights service.Weights, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqID := r.Header.Get("X-Request-ID")
		log := logger
		if reqID != "" {
			log = logger.With().Str("req_id", reqID).Logger()
		}

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}

		file, header, err := r.FormFile("catalog")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing catalog file: "+err.Error())
			return
		}
		defer file.Close()

		mapping := model.Mapping{
			ModelKey:  r.FormValue("model_col"),
			SEERKey:   r.FormValue("seer_col"),
			PriceKey:  r.FormValue("price_col"),
			HeaderRow: atoi(r.FormValue("header_row"), 1),
		}
		if mapping.ModelKey == "" {
			writeError(w, http.StatusBadRequest, "model_col is required")
			return
		}

		rows, err := fileio.ReadCatalog(file, header.Filename, mapping.HeaderRow)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read catalog: "+err.Error())
			return
		}

		opt := model.Options{
			Efficiency:   model.EfficiencyTier(strings.TrimSpace(r.FormValue("efficiency"))),
			ToleranceBTU: atoi(r.FormValue("tolerance_btu"), 0),
			MinScore:     toFloat(r.FormValue("min_score"), 0),
			Threshold:    toFloat(r.FormValue("threshold"), cfg.FuzzyThreshold),
			Limit:        atoi(r.FormValue("limit"), 0),
		}

		originalModel := r.FormValue("original_model")
		dec, err := reg.DecodeAuto(originalModel)
		if err != nil {
			// unknown original: offer the nearest catalog model numbers so
			// the user can correct a typo instead of dead-ending
			if suggestions := suggestFromCatalog(originalModel, rows, mapping, opt.Threshold); suggestions != nil {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
					"error":       err.Error(),
					"suggestions": suggestions,
				})
				return
			}
			writeCoreError(w, err)
			return
		}

		res := service.Run(reg, weights, dec.Spec, rows, mapping, opt)

		writeJSON(w, http.StatusOK, res)
		log.Info().
			Str("original", dec.Spec.Model).
			Int("catalog_rows", len(rows)).
			Int("matched", len(res.Rows)).
			Int("undecodable", len(res.Undecodable)).
			Dur("elapsed", time.Since(start)).
			Msg("crossover done")
	}
}

func suggestFromCatalog(input string, rows []map[string]string, mapping model.Mapping, threshold float64) []model.Suggestion {
	models := make([]string, 0, len(rows))
	for _, row := range rows {
		if m := strings.TrimSpace(row[mapping.ModelKey]); m != "" {
			models = append(models, m)
		}
	}
	if len(models) == 0 {
		return nil
	}
	return service.Suggest(input, models, threshold, 5)
}
