package http

type statusResp struct {
	Connected bool   `json:"connected"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	Method    string `json:"method,omitempty"`
	Message   string `json:"message,omitempty"`
}

type loginResp struct {
	Success         bool   `json:"success"`
	RedirectToOAuth bool   `json:"redirect_to_oauth"`
	URL             string `json:"url,omitempty"`
	Message         string `json:"message"`
}

type logoutResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
