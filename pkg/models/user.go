package models

type User struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Email          string `json:"email" db:"email"`
	DepartmentID   int64  `json:"departmentId" db:"department_id"`
	DepartmentName string `json:"departmentName" db:"department_name"`
}

type UserRequest struct {
	Name         string `json:"name" binding:"required,notblank"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID int64  `json:"departmentId" binding:"required"`
}

type Department struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	EmployeeCount int    `json:"employeeCount" db:"employee_count"`
}

type DepartmentRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}
