package server

import (
	"encoding/json"
	"net/http"

	"github.com/rickgao/coinboard/internal/store"
)

// listStatus is the per-list portion of the status response.
type listStatus struct {
	Status store.Status `json:"status"`
	Error  string       `json:"error,omitempty"`
}

// statusResponse is the GET /api/status body.
type statusResponse struct {
	Assets listStatus `json:"assets"`
	NFTs   listStatus `json:"nfts"`
	Stream string     `json:"stream,omitempty"`
}

// themeResponse is the GET /api/theme body.
type themeResponse struct {
	DarkMode bool `json:"darkMode"`
}

// searchRequest is the body of the search intents.
type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response failed", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.st.FilteredAssets())
}

func (s *Server) handleNFTs(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.st.FilteredNFTs())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	assetStatus, assetErr := s.st.AssetsStatus()
	nftStatus, nftErr := s.st.NFTsStatus()

	resp := statusResponse{
		Assets: listStatus{Status: assetStatus, Error: assetErr},
		NFTs:   listStatus{Status: nftStatus, Error: nftErr},
	}
	if s.streamState != nil {
		resp.Stream = string(s.streamState())
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, themeResponse{DarkMode: s.st.DarkMode()})
}

func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	s.st.ToggleDarkMode()
	s.writeJSON(w, http.StatusOK, themeResponse{DarkMode: s.st.DarkMode()})
}

func (s *Server) handleAssetSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	s.st.SetAssetQuery(req.Query)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleNFTSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	s.st.SetNFTQuery(req.Query)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAssetFavorite(w http.ResponseWriter, r *http.Request) {
	s.st.ToggleFavorite(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleNFTFavorite(w http.ResponseWriter, r *http.Request) {
	s.st.ToggleNFTFavorite(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
