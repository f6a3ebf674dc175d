package web

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// authUser is the only accepted basic auth user
const authUser = "talentflow"

// authMiddleware requires basic auth with the configured bcrypt password hash
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if ok && username == authUser && s.checkPassword(password) {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("WWW-Authenticate", `Basic realm="TalentFlow API"`)
		s.writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *Server) checkPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
}
