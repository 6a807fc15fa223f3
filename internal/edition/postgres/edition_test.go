package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hafiztri/comic-shelf/internal/edition"
	editionPostgres "github.com/hafiztri/comic-shelf/internal/edition/postgres"

	catalogDatamodel "github.com/hafiztri/comic-shelf/internal/core/datamodel/catalog"
)

func TestEditionPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Edition Postgres Suite")
}

var _ = Describe("Edition Repository", func() {
	var (
		db   *gorm.DB
		repo edition.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&catalogDatamodel.Edition{})
		Expect(err).NotTo(HaveOccurred())

		repo = editionPostgres.NewEditionRepository(db)

		for _, e := range []*catalogDatamodel.Edition{
			{Title: "Saga Book One", Format: catalogDatamodel.EditionFormatOmnibus, Volume: 1, ISBN: "978-1-60706-601-9"},
			{Title: "Saga Volume 1", Format: catalogDatamodel.EditionFormatTPB, Volume: 1, ISBN: "978-1-60706-521-0"},
			{Title: "Saga Volume 2", Format: catalogDatamodel.EditionFormatTPB, Volume: 2, ISBN: "978-1-60706-692-7"},
		} {
			Expect(repo.Create(e)).To(Succeed())
		}
	})

	Describe("GetAll", func() {
		It("should return every edition when no format is given", func() {
			rows, err := repo.GetAll("")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))
		})

		It("should return only the requested format", func() {
			rows, err := repo.GetAll(catalogDatamodel.EditionFormatTPB)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			for _, row := range rows {
				Expect(row.Format).To(Equal(catalogDatamodel.EditionFormatTPB))
			}
		})

		It("should return omnibuses separately from trade paperbacks", func() {
			rows, err := repo.GetAll(catalogDatamodel.EditionFormatOmnibus)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Title).To(Equal("Saga Book One"))
		})
	})

	Describe("Update and Delete", func() {
		It("should persist field changes", func() {
			rows, err := repo.GetAll(catalogDatamodel.EditionFormatOmnibus)
			Expect(err).NotTo(HaveOccurred())

			rows[0].PageCount = 504
			Expect(repo.Update(rows[0])).To(Succeed())

			found, err := repo.GetByID(rows[0].ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.PageCount).To(Equal(504))
		})

		It("should return nil after deletion", func() {
			rows, err := repo.GetAll("")
			Expect(err).NotTo(HaveOccurred())

			Expect(repo.Delete(rows[0].ID)).To(Succeed())

			found, err := repo.GetByID(rows[0].ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})
})
