package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"cookbook/internal/api"
	"cookbook/internal/images"
	"cookbook/internal/logging"
	"cookbook/internal/recipe"
	"cookbook/internal/textutil"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, api.HealthResponse{Status: "ok", Recipes: len(s.store.Load(r.Context()))})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.svc.List(r.Context(), r.URL.Query().Get("q")))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	dto, ok := s.svc.Describe(r.Context(), r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, recipe.ErrNotFound.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.RecipeResponse{Recipe: dto})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if _, err := s.svc.Remove(r.Context(), r.PathValue("id")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	var (
		in  recipe.NewRecipe
		err error
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		in, err = s.readRecipeForm(r)
	case "application/json", "":
		err = json.NewDecoder(r.Body).Decode(&in)
	default:
		s.writeError(w, http.StatusUnsupportedMediaType, "expected multipart/form-data or application/json")
		return
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dto, err := s.svc.Create(r.Context(), in)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, api.RecipeResponse{Recipe: dto})
}

// readRecipeForm reads the create form: title, ingredients one per line,
// steps, comma-separated tags, and an optional image file.
func (s *Server) readRecipeForm(r *http.Request) (recipe.NewRecipe, error) {
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		return recipe.NewRecipe{}, err
	}
	in := recipe.NewRecipe{
		Title:       r.FormValue("title"),
		Ingredients: textutil.SplitLines(r.FormValue("ingredients")),
		Steps:       r.FormValue("steps"),
		Tags:        textutil.SplitTags(r.FormValue("tags")),
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil
	}
	if err != nil {
		return recipe.NewRecipe{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return recipe.NewRecipe{}, err
	}
	if len(data) == 0 {
		return in, nil
	}
	name := textutil.SanitizeFileName(header.Filename)
	if err := images.CheckUpload(name, data); err != nil {
		return recipe.NewRecipe{}, err
	}
	in.Image = data
	in.ImageName = name
	return in, nil
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := recipe.Export(s.store.Load(r.Context()))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeDownload(w, "recipes.json", data)
}

func (s *Server) handleExportRecipe(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.store.Get(r.Context(), r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, recipe.ErrNotFound.Error())
		return
	}
	data, err := recipe.ExportRecipe(rec)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeDownload(w, recipe.ExportFileName(rec), data)
}

func (s *Server) writeDownload(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Debug("download write failed", logging.Error(err))
	}
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	raw, err := readImportBody(r, s.maxUpload)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.svc.Import(r.Context(), raw)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// readImportBody accepts either a raw JSON body or a multipart upload in
// the "file" field.
func readImportBody(r *http.Request, maxMemory int64) ([]byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return io.ReadAll(r.Body)
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := images.ValidName(name); err != nil {
		s.writeError(w, http.StatusNotFound, images.ErrNotFound.Error())
		return
	}
	rc, err := s.store.Images().Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, images.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, images.ErrNotFound.Error())
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", images.ContentType(name))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		s.logger.Debug("image write failed", logging.String("image", name), logging.Error(err))
	}
}
