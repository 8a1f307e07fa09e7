package cli

import (
	"fmt"
	"os"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/sietse/jobboard/internal/core/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	userName     string
	employerName string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
	Long:  "Manage user accounts and their employers from the command line",
}

var usersAddCmd = &cobra.Command{
	Use:   "add <email>",
	Short: "Add a new user with an employer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		// Check if user already exists
		exists, err := services.UserRepo.ExistsByEmail(cmd.Context(), email)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("user already exists: %s", email)
		}

		if userName == "" {
			userName = email
		}
		if employerName == "" {
			employerName = userName
		}

		// Prompt for password
		fmt.Print("Enter password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		fmt.Print("Confirm password: ")
		confirmPassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		if string(password) != string(confirmPassword) {
			return fmt.Errorf("passwords do not match")
		}

		if len(password) < 8 {
			return fmt.Errorf("password must be at least 8 characters")
		}

		// Hash password
		hashedPassword, err := services.AuthService.HashPassword(string(password))
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		// Create user and employer atomically; CLI accounts carry no logo
		user := domain.NewUser(userName, email, hashedPassword)
		employer := domain.NewEmployer(0, employerName, "")
		if err := services.AccountRepo.CreateUserWithEmployer(cmd.Context(), user, employer); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Printf("User '%s' created with employer '%s'\n", email, employerName)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <email>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		user, err := services.UserRepo.FindByEmail(cmd.Context(), email)
		if err != nil {
			return fmt.Errorf("user not found: %s", email)
		}

		// Confirm deletion
		fmt.Printf("Are you sure you want to delete user '%s'? (yes/no): ", email)
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" {
			fmt.Println("Cancelled")
			return nil
		}

		if err := services.UserRepo.Delete(cmd.Context(), user.ID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		fmt.Printf("User '%s' deleted successfully\n", email)
		return nil
	},
}

var usersUpdatePasswordCmd = &cobra.Command{
	Use:   "update-password <email>",
	Short: "Update user password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		user, err := services.UserRepo.FindByEmail(cmd.Context(), email)
		if err != nil {
			return fmt.Errorf("user not found: %s", email)
		}

		// Prompt for new password
		fmt.Print("Enter new password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		fmt.Print("Confirm new password: ")
		confirmPassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		if string(password) != string(confirmPassword) {
			return fmt.Errorf("passwords do not match")
		}

		if len(password) < 8 {
			return fmt.Errorf("password must be at least 8 characters")
		}

		hashedPassword, err := services.AuthService.HashPassword(string(password))
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user.Password = hashedPassword
		user.UpdatedAt = time.Now()
		if err := services.UserRepo.Update(cmd.Context(), user); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		fmt.Printf("Password updated for user '%s'\n", email)
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		users, err := services.UserRepo.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No users found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "EMAIL\tNAME\tCREATED AT")
		for _, user := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				user.Email,
				user.Name,
				user.CreatedAt.Format("2006-01-02 15:04:05"),
			)
		}
		w.Flush()

		return nil
	},
}

func init() {
	usersAddCmd.Flags().StringVar(&userName, "name", "", "display name (defaults to the email)")
	usersAddCmd.Flags().StringVar(&employerName, "employer", "", "employer name (defaults to the display name)")

	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	usersCmd.AddCommand(usersUpdatePasswordCmd)
	usersCmd.AddCommand(usersListCmd)
}
