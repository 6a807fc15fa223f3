package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hafiztri/comic-shelf/internal/rbac"
	rbacPostgres "github.com/hafiztri/comic-shelf/internal/rbac/postgres"

	rbacDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/rbac"
)

func TestRBACPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "RBAC Postgres Suite")
}

var _ = Describe("RBAC Repository", func() {
	var (
		db   *gorm.DB
		repo rbac.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&rbacDatamodel.Role{},
			&rbacDatamodel.Permission{},
			&rbacDatamodel.UserRole{},
			&rbacDatamodel.RolePermission{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = rbacPostgres.NewRepository(db)
	})

	seedRole := func(name string) *rbacDatamodel.Role {
		role := &rbacDatamodel.Role{Name: name}
		Expect(repo.CreateRole(role)).To(Succeed())
		return role
	}

	seedPermission := func(name, resource, action string) *rbacDatamodel.Permission {
		perm := &rbacDatamodel.Permission{Name: name, Resource: resource, Action: action}
		Expect(repo.CreatePermission(perm)).To(Succeed())
		return perm
	}

	Describe("PermissionNamesForRoles", func() {
		It("should resolve the union across roles", func() {
			librarian := seedRole("librarian")
			admin := seedRole("admin")
			create := seedPermission("comics:create", "comics", "create")
			del := seedPermission("comics:delete", "comics", "delete")

			Expect(repo.GrantPermission(librarian.ID, create.ID)).To(Succeed())
			Expect(repo.GrantPermission(admin.ID, create.ID)).To(Succeed())
			Expect(repo.GrantPermission(admin.ID, del.ID)).To(Succeed())

			names, err := repo.PermissionNamesForRoles([]int64{librarian.ID, admin.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(ContainElements("comics:create", "comics:delete"))
		})

		It("should return nothing for roles with no grants", func() {
			reader := seedRole("reader")

			names, err := repo.PermissionNamesForRoles([]int64{reader.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(BeEmpty())
		})
	})

	Describe("GrantPermission", func() {
		It("should be idempotent", func() {
			role := seedRole("librarian")
			perm := seedPermission("comics:create", "comics", "create")

			Expect(repo.GrantPermission(role.ID, perm.ID)).To(Succeed())
			Expect(repo.GrantPermission(role.ID, perm.ID)).To(Succeed())

			var count int64
			Expect(db.Model(&rbacDatamodel.RolePermission{}).Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))
		})
	})

	Describe("DeleteRole", func() {
		It("should cascade to grants and user assignments", func() {
			role := seedRole("librarian")
			perm := seedPermission("comics:create", "comics", "create")
			Expect(repo.GrantPermission(role.ID, perm.ID)).To(Succeed())
			Expect(repo.AssignRole(42, role.ID)).To(Succeed())

			Expect(repo.DeleteRole(role.ID)).To(Succeed())

			found, err := repo.GetRoleByID(role.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())

			var grants, assignments int64
			Expect(db.Model(&rbacDatamodel.RolePermission{}).Count(&grants).Error).To(Succeed())
			Expect(db.Model(&rbacDatamodel.UserRole{}).Count(&assignments).Error).To(Succeed())
			Expect(grants).To(BeZero())
			Expect(assignments).To(BeZero())
		})
	})

	Describe("AssignRole and RemoveRole", func() {
		It("should change what PermissionNamesForRoles resolves for the user", func() {
			role := seedRole("librarian")
			perm := seedPermission("series:update", "series", "update")
			Expect(repo.GrantPermission(role.ID, perm.ID)).To(Succeed())

			Expect(repo.AssignRole(7, role.ID)).To(Succeed())

			var roleIDs []int64
			Expect(db.Model(&rbacDatamodel.UserRole{}).Where("user_id = ?", 7).Pluck("role_id", &roleIDs).Error).To(Succeed())
			names, err := repo.PermissionNamesForRoles(roleIDs)
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(ConsistOf("series:update"))

			Expect(repo.RemoveRole(7, role.ID)).To(Succeed())
			roleIDs = nil
			Expect(db.Model(&rbacDatamodel.UserRole{}).Where("user_id = ?", 7).Pluck("role_id", &roleIDs).Error).To(Succeed())
			Expect(roleIDs).To(BeEmpty())
		})
	})
})
