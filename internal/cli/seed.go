package cli

import (
	"fmt"
	"math/rand"

	"github.com/sietse/jobboard/internal/core/domain"
	"github.com/sietse/jobboard/internal/core/service"
	"github.com/spf13/cobra"
)

var seedJobs int

var seedTitles = []string{
	"Backend Developer",
	"Frontend Engineer",
	"Product Designer",
	"Data Analyst",
	"Site Reliability Engineer",
	"QA Engineer",
	"Engineering Manager",
	"Technical Writer",
}

var seedSalaries = []string{"$50,000 USD", "$90,000 USD", "$150,000 USD"}

var seedLocations = []string{"Remote", "Hybrid", "Office", "Field"}

var seedTags = []string{"remote", "senior", "junior", "backend", "frontend", "on-site"}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create demo accounts and job listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		ctx := cmd.Context()

		for i := 0; i < seedJobs; i++ {
			email := fmt.Sprintf("employer%d@example.com", i+1)

			exists, err := services.UserRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return err
			}

			var userID int64
			if exists {
				user, err := services.UserRepo.FindByEmail(ctx, email)
				if err != nil {
					return err
				}
				userID = user.ID
			} else {
				hashed, err := services.AuthService.HashPassword("password")
				if err != nil {
					return err
				}
				user := domain.NewUser(fmt.Sprintf("Employer %d", i+1), email, hashed)
				employer := domain.NewEmployer(0, fmt.Sprintf("Acme %d B.V.", i+1), "")
				if err := services.AccountRepo.CreateUserWithEmployer(ctx, user, employer); err != nil {
					return err
				}
				userID = user.ID
			}

			tags := fmt.Sprintf("%s,%s",
				seedTags[rand.Intn(len(seedTags))],
				seedTags[rand.Intn(len(seedTags))],
			)

			job, err := services.JobService.Create(ctx, userID, service.JobInput{
				Title:    seedTitles[rand.Intn(len(seedTitles))],
				Salary:   seedSalaries[rand.Intn(len(seedSalaries))],
				Location: seedLocations[rand.Intn(len(seedLocations))],
				Schedule: string(domain.Schedules[rand.Intn(len(domain.Schedules))]),
				URL:      fmt.Sprintf("https://example.com/jobs/%d", i+1),
				Featured: rand.Intn(2) == 0,
				Tags:     tags,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created job %d: %s\n", job.ID, job.Title)
		}

		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedJobs, "jobs", 10, "number of demo jobs to create")
	rootCmd.AddCommand(seedCmd)
}
