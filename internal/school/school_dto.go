package school

import "go-school/internal/auth"

type RegisterSchoolRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	AcademicYear  string `json:"academic_year"`
	PrincipalName string `json:"principal_name" binding:"required"`
	Username      string `json:"username" binding:"required,min=3,max=50"`
	Password      string `json:"password" binding:"required,min=8"`
}

type UpdateSchoolRequest struct {
	Name         string  `json:"name"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	AcademicYear *string `json:"academic_year"`
}

type SchoolResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	AcademicYear string `json:"academic_year"`
	JoinCode     string `json:"join_code"`
}

type RegisterSchoolResponse struct {
	School    SchoolResponse    `json:"school"`
	Principal auth.AuthResponse `json:"principal"`
}
