package dto

type UserProfileResponse struct {
	Username              string   `json:"username"`
	FullName              string   `json:"full_name"`
	EducationalBackground string   `json:"educational_background"`
	Interests             []string `json:"interests"`
}

type UpdateProfileRequest struct {
	EducationalBackground string   `json:"educational_background"`
	Interests             []string `json:"interests"`
}

type UpdateProfileResponse struct {
	Success bool `json:"success"`
}
