package response

import "hostelops/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                       `json:"access_token"`
	Staff       *queries.AuthorizedStaffView `json:"staff"`
}
