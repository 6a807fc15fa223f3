package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// permission grid: resource -> actions. Read endpoints on the catalog are
// public, so only mutations and admin surfaces appear here.
var seedPermissions = map[string][]string{
	"publishers":  {"create", "update", "delete"},
	"universes":   {"create", "update", "delete"},
	"creators":    {"create", "update", "delete"},
	"series":      {"create", "update", "delete"},
	"comics":      {"create", "update", "delete"},
	"editions":    {"create", "update", "delete"},
	"users":       {"read", "update", "delete"},
	"roles":       {"read", "create", "update", "delete"},
	"permissions": {"read", "create", "delete"},
}

var catalogResources = []string{"publishers", "universes", "creators", "series", "comics", "editions"}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with roles, permissions and an admin user",
	Long:  `Seed the database with the default role/permission grid and an initial admin account. Safe to re-run.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"role_permissions", "user_roles"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing role assignments")
		}

		for resource, actions := range seedPermissions {
			for _, action := range actions {
				name := resource + ":" + action
				var pid int64
				if err := db.Raw("SELECT id FROM permissions WHERE name = ?", name).Row().Scan(&pid); err != nil {
					if err := db.Exec("INSERT INTO permissions (name, resource, action, created_at) VALUES (?, ?, ?, now())", name, resource, action).Error; err != nil {
						log.Fatalf("failed to insert permission %s: %v", name, err)
					}
				}
			}
		}
		fmt.Println("Permission grid seeded")

		roles := []struct {
			Name string
			Desc string
		}{
			{"admin", "full administrator"},
			{"librarian", "maintains the shared catalog"},
			{"reader", "tracks a personal collection"},
		}
		for _, r := range roles {
			var rid int64
			if err := db.Raw("SELECT id FROM roles WHERE name = ?", r.Name).Row().Scan(&rid); err != nil {
				if err := db.Exec("INSERT INTO roles (name, description, created_at) VALUES (?, ?, now())", r.Name, r.Desc).Error; err != nil {
					log.Fatalf("failed to insert role %s: %v", r.Name, err)
				}
			}
		}
		fmt.Println("Roles seeded: admin, librarian, reader")

		// admin gets everything, librarian the catalog mutations, reader
		// nothing extra (collection routes only need authentication)
		for resource, actions := range seedPermissions {
			for _, action := range actions {
				grantPermission(db, "admin", resource+":"+action)
			}
		}
		for _, resource := range catalogResources {
			for _, action := range []string{"create", "update", "delete"} {
				grantPermission(db, "librarian", resource+":"+action)
			}
		}

		adminEmail := "admin@comicshelf.local"
		var exists int
		adminExists := false
		if err := db.Raw("SELECT 1 FROM users WHERE email = ?", adminEmail).Row().Scan(&exists); err == nil {
			fmt.Println("admin user already exists; will ensure role")
			adminExists = true
		}

		if !adminExists {
			hash, _ := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
			if err := db.Exec("INSERT INTO users (username, email, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, true, now(), now())", "admin", adminEmail, string(hash)).Error; err != nil {
				log.Fatalf("failed to insert admin user: %v", err)
			}
			fmt.Println("Seeded admin user:", adminEmail)
		}

		var adminUserID, adminRoleID int64
		if err := db.Raw("SELECT id FROM users WHERE email = ?", adminEmail).Row().Scan(&adminUserID); err != nil {
			log.Fatalf("failed to lookup admin user id: %v", err)
		}
		if err := db.Raw("SELECT id FROM roles WHERE name = ?", "admin").Row().Scan(&adminRoleID); err != nil {
			log.Fatalf("failed to lookup admin role id: %v", err)
		}
		if err := db.Raw("SELECT 1 FROM user_roles WHERE user_id = ? AND role_id = ?", adminUserID, adminRoleID).Row().Scan(&exists); err != nil {
			if err := db.Exec("INSERT INTO user_roles (user_id, role_id, created_at) VALUES (?, ?, now())", adminUserID, adminRoleID).Error; err != nil {
				log.Fatalf("failed to assign admin role: %v", err)
			}
		}

		fmt.Println("Admin role assigned to:", adminEmail)
	},
}

func grantPermission(db *gorm.DB, roleName, permName string) {
	var rid, pid int64
	if err := db.Raw("SELECT id FROM roles WHERE name = ?", roleName).Row().Scan(&rid); err != nil {
		log.Fatalf("role not found %s: %v", roleName, err)
	}
	if err := db.Raw("SELECT id FROM permissions WHERE name = ?", permName).Row().Scan(&pid); err != nil {
		log.Fatalf("permission not found %s: %v", permName, err)
	}

	var exists int
	if err := db.Raw("SELECT 1 FROM role_permissions WHERE role_id = ? AND permission_id = ?", rid, pid).Row().Scan(&exists); err == nil {
		return
	}
	if err := db.Exec("INSERT INTO role_permissions (role_id, permission_id, created_at) VALUES (?, ?, now())", rid, pid).Error; err != nil {
		log.Fatalf("failed to grant %s to %s: %v", permName, roleName, err)
	}
}
