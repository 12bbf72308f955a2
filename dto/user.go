package dto

type CreateUserRequest struct {
	Username    string   `json:"username" validate:"required,min=3,max=64"`
	Password    string   `json:"password" validate:"required,min=6"`
	Name        string   `json:"name"`
	Education   string   `json:"education"`
	Skills      []string `json:"skills"`
	Interests   []string `json:"interests"`
	CareerGoals string   `json:"careerGoals"`
}

type UserResponse struct {
	ID          uint     `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Education   string   `json:"education"`
	Skills      []string `json:"skills"`
	Interests   []string `json:"interests"`
	CareerGoals string   `json:"careerGoals"`
}
