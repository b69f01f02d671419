// Package seed loads a demo data set: the administrator account plus a few
// departments, employees and assets. Assets go through the asset service so
// each one starts with its "Asset created" history entry.
package seed

import (
	"context"
	"fmt"
	"time"

	"assettrack/internal/core/container"
	"assettrack/pkg/metadata"
	"assettrack/pkg/models"

	"go.uber.org/zap"
)

type AdminAccount struct {
	Username string
	Password string
	Email    string
	FullName string
}

type Summary struct {
	AdminCreated bool
	Departments  int
	Users        int
	Assets       int
}

var departmentNames = []string{"Engineering", "Marketing", "Sales", "IT", "HR", "Finance"}

type sampleUser struct {
	name, email, department string
}

var sampleUsers = []sampleUser{
	{"Alice Johnson", "alice@example.com", "Engineering"},
	{"Bob Williams", "bob@example.com", "Marketing"},
	{"Charlie Brown", "charlie@example.com", "Sales"},
	{"Diana Miller", "diana@example.com", "IT"},
}

type sampleAsset struct {
	req      models.AssetRequest
	assignee string
}

func sampleAssets() []sampleAsset {
	date := func(y int, m time.Month, d int) *models.Date {
		v := models.NewDate(y, m, d)
		return &v
	}

	return []sampleAsset{
		{models.AssetRequest{
			ID: "IT-001", Name: `MacBook Pro 16"`, Category: metadata.CategoryLaptop, Status: metadata.StatusInUse,
			PurchaseDate: date(2023, time.January, 15), Notes: "Assigned for design work.", Vendor: "Apple Inc.",
			WarrantyExpiry: date(2026, time.January, 14), Specs: "Apple M2 Pro, 16GB RAM, 512GB SSD",
		}, "alice@example.com"},
		{models.AssetRequest{
			ID: "IT-002", Name: `Dell UltraSharp 27"`, Category: metadata.CategoryMonitor, Status: metadata.StatusInUse,
			PurchaseDate: date(2023, time.February, 20), Vendor: "Dell Technologies",
			WarrantyExpiry: date(2026, time.February, 19), Specs: "27-inch 4K UHD (3840 x 2160), IPS",
		}, "bob@example.com"},
		{models.AssetRequest{
			ID: "IT-003", Name: "Lenovo ThinkPad X1", Category: metadata.CategoryLaptop, Status: metadata.StatusInStorage,
			PurchaseDate: date(2022, time.November, 10), Notes: "Ready for assignment", Vendor: "Lenovo",
			WarrantyExpiry: date(2025, time.November, 9), Specs: "Intel Core i7, 16GB RAM, 1TB SSD",
		}, ""},
		{models.AssetRequest{
			ID: "IT-004", Name: "iPhone 14", Category: metadata.CategoryPhone, Status: metadata.StatusInRepair,
			PurchaseDate: date(2023, time.March, 1), Vendor: "Apple Inc.",
			WarrantyExpiry: date(2025, time.February, 28), Specs: "A15 Bionic chip, 256GB Storage, Blue",
		}, "charlie@example.com"},
		{models.AssetRequest{
			ID: "IT-005", Name: "Logitech MX Master 3", Category: metadata.CategoryMouse, Status: metadata.StatusDecommissioned,
			PurchaseDate: date(2021, time.June, 1), Vendor: "Logitech",
			WarrantyExpiry: date(2023, time.May, 31), Specs: "Wireless, 8000 DPI, USB-C Charging",
		}, ""},
	}
}

// Run ensures the admin account exists and, when the directory is empty, loads
// the sample data. Running it twice is harmless.
func Run(ctx context.Context, c *container.Container, account AdminAccount, logger *zap.Logger) (Summary, error) {
	var summary Summary

	created, err := c.AdminService.EnsureAdmin(ctx, account.Username, account.Password, account.Email, account.FullName)
	if err != nil {
		return summary, fmt.Errorf("seed admin: %w", err)
	}
	summary.AdminCreated = created

	existing, err := c.UserService.List(ctx)
	if err != nil {
		return summary, err
	}
	if len(existing) > 0 {
		logger.Info("Directory already populated, skipping sample data", zap.Int("users", len(existing)))
		return summary, nil
	}

	departmentIDs := map[string]int64{}
	for _, name := range departmentNames {
		department, err := c.DepartmentService.Create(ctx, models.DepartmentRequest{Name: name})
		if err != nil {
			return summary, fmt.Errorf("seed department %s: %w", name, err)
		}
		departmentIDs[name] = department.ID
		summary.Departments++
	}

	userIDs := map[string]int64{}
	for _, u := range sampleUsers {
		user, err := c.UserService.Create(ctx, models.UserRequest{
			Name:         u.name,
			Email:        u.email,
			DepartmentID: departmentIDs[u.department],
		})
		if err != nil {
			return summary, fmt.Errorf("seed user %s: %w", u.email, err)
		}
		userIDs[u.email] = user.ID
		summary.Users++
	}

	for _, a := range sampleAssets() {
		req := a.req
		if a.assignee != "" {
			id := userIDs[a.assignee]
			req.AssignedTo = &id
		}
		if _, err := c.AssetService.Create(ctx, req); err != nil {
			return summary, fmt.Errorf("seed asset %s: %w", req.ID, err)
		}
		summary.Assets++
	}

	logger.Info("Sample data initialized",
		zap.Int("departments", summary.Departments),
		zap.Int("users", summary.Users),
		zap.Int("assets", summary.Assets),
	)
	return summary, nil
}
