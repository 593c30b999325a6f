package cmd

import (
	"net/http"

	"spotserve/internal/adapters/out/payments"
	"spotserve/internal/adapters/out/postgres"
	"spotserve/internal/adapters/out/postgres/catalogrepo"
	"spotserve/internal/adapters/out/postgres/jobrepo"
	"spotserve/internal/adapters/out/postgres/mechanicrepo"
	"spotserve/internal/core/application/usecases/commands"
	"spotserve/internal/core/application/usecases/queries"
	"spotserve/internal/core/domain/services"
	"spotserve/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	pricer          services.JobPricer
	paymentProvider ports.PaymentProvider
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	catalog := catalogrepo.NewGormServiceCatalog(gormDB)

	var provider ports.PaymentProvider = payments.NewStubProvider()
	if config.PaymentGatewayURL != "" {
		provider = payments.NewCheckoutClient(
			config.PaymentGatewayURL, config.PaymentGatewayKey, &http.Client{})
	}

	return CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricer:          services.NewJobPricer(catalog, config.DefaultBasePrice),
		paymentProvider: provider,
	}
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobUoWFactory(), c.pricer)
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	return commands.NewAcceptJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateStartJobCommandHandler() commands.StartJobCommandHandler {
	return commands.NewStartJobCommandHandler(c.jobUoWFactory(), services.RandomOtpGenerator{})
}

func (c *CompositionRoot) CreateVerifyOtpCommandHandler() commands.VerifyOtpCommandHandler {
	return commands.NewVerifyOtpCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateRequestPaymentCommandHandler() commands.RequestPaymentCommandHandler {
	return commands.NewRequestPaymentCommandHandler(c.jobUoWFactory(), c.paymentProvider)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateCompleteJobCommandHandler() commands.CompleteJobCommandHandler {
	return commands.NewCompleteJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateGetCustomerJobsQueryHandler() queries.GetCustomerJobsQueryHandler {
	return queries.NewGetCustomerJobsQueryHandler(c.gormDB, c.pricer)
}

func (c *CompositionRoot) CreateGetMechanicJobsQueryHandler() queries.GetMechanicJobsQueryHandler {
	return queries.NewGetMechanicJobsQueryHandler(c.gormDB, c.pricer)
}

func (c *CompositionRoot) CreateGetNearbyJobsQueryHandler() queries.GetNearbyJobsQueryHandler {
	return queries.NewGetNearbyJobsQueryHandler(
		c.JobRepository(), c.MechanicDirectory(), c.pricer)
}

func (c *CompositionRoot) CreateGetJobOtpQueryHandler() queries.GetJobOtpQueryHandler {
	return queries.NewGetJobOtpQueryHandler(c.JobRepository())
}

func (c *CompositionRoot) CreateGetReceiptQueryHandler() queries.GetReceiptQueryHandler {
	return queries.NewGetReceiptQueryHandler(c.JobRepository(), c.pricer)
}

// JobRepository returns a standalone repository for read paths that do not
// need a transaction.
func (c *CompositionRoot) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(c.gormDB, nil)
}

func (c *CompositionRoot) MechanicDirectory() *mechanicrepo.GormMechanicDirectory {
	return mechanicrepo.NewGormMechanicDirectory(c.gormDB)
}

func (c *CompositionRoot) PaymentProvider() ports.PaymentProvider {
	return c.paymentProvider
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}
