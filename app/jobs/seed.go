package jobs

import (
	"time"

	"github.com/umputun/talentflow/app/enums"
)

// DemoJobs returns the dataset stored on the first Init of an empty store
func DemoJobs() []Job {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }
	return []Job{
		{
			ID:          "1",
			Title:       "Senior Frontend Developer",
			Tags:        []string{"React", "TypeScript", "Tailwind"},
			Status:      enums.JobStatusActive,
			Slug:        "senior-frontend-developer",
			Description: "We are looking for an experienced frontend developer to join our team.",
			Location:    "Remote",
			Type:        "Full-time",
			Salary:      "$80,000 - $120,000",
			Order:       1,
			CreatedAt:   day(1),
			UpdatedAt:   day(1),
		},
		{
			ID:          "2",
			Title:       "Backend Engineer",
			Tags:        []string{"Node.js", "PostgreSQL", "AWS"},
			Status:      enums.JobStatusActive,
			Slug:        "backend-engineer",
			Description: "Join our backend team to build scalable APIs and services.",
			Location:    "San Francisco, CA",
			Type:        "Full-time",
			Salary:      "$90,000 - $130,000",
			Order:       2,
			CreatedAt:   day(2),
			UpdatedAt:   day(2),
		},
		{
			ID:          "3",
			Title:       "Product Manager",
			Tags:        []string{"Strategy", "Analytics", "Agile"},
			Status:      enums.JobStatusActive,
			Slug:        "product-manager",
			Description: "Lead product strategy and work with cross-functional teams.",
			Location:    "New York, NY",
			Type:        "Full-time",
			Salary:      "$100,000 - $140,000",
			Order:       3,
			CreatedAt:   day(3),
			UpdatedAt:   day(3),
		},
		{
			ID:          "4",
			Title:       "UX Designer",
			Tags:        []string{"Figma", "Design Systems", "User Research"},
			Status:      enums.JobStatusArchived,
			Slug:        "ux-designer",
			Description: "Create beautiful and intuitive user experiences.",
			Location:    "Remote",
			Type:        "Contract",
			Salary:      "$70,000 - $90,000",
			Order:       4,
			CreatedAt:   day(4),
			UpdatedAt:   day(4),
		},
	}
}
