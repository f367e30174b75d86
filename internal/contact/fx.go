package contact

import (
	"github.com/jvrel/portfolio/internal/contact/domain"
	"github.com/jvrel/portfolio/internal/contact/repository"
	"github.com/jvrel/portfolio/internal/contact/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("contact.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Invoke(migrate),
)

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.ContactSubmission{})
}
