package cmd

import (
	"log/slog"
	"os"
	"strconv"

	"freightbroker/internal/adapters/out/notify"
	"freightbroker/internal/adapters/out/postgres"
	"freightbroker/internal/adapters/out/postgres/ratetablerepo"
	"freightbroker/internal/core/application/usecases/commands"
	"freightbroker/internal/core/application/usecases/queries"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	rates         ports.RateTableRepository
	notifier      ports.NotificationSink
	payouts       ports.PayoutLedger
	withdrawalFee kernel.Money
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	feeCents, err := strconv.ParseInt(config.WithdrawalFeeCents, 10, 64)
	if err != nil {
		logger.Warn("invalid WITHDRAWAL_FEE_CENTS, using zero fee", "value", config.WithdrawalFeeCents)
		feeCents = 0
	}
	fee, err := kernel.NewMoneyFromCents(feeCents)
	if err != nil {
		fee = kernel.Money{}
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		rates:         ratetablerepo.NewGormRateTableRepository(gormDB),
		notifier:      notify.NewSlogNotificationSink(logger),
		payouts:       notify.NewSlogPayoutLedger(logger),
		withdrawalFee: fee,
		logger:        logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateFreightCommandHandler() commands.CreateFreightCommandHandler {
	var f commands.FreightUoWFactory = FuncFreightUoWFactory(func() commands.FreightUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateFreightCommandHandler(f, c.rates)
}

func (c *CompositionRoot) CreateSubmitProposalCommandHandler() commands.SubmitProposalCommandHandler {
	var f commands.ProposalUoWFactory = FuncProposalUoWFactory(func() commands.ProposalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitProposalCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptProposalCommandHandler() commands.AcceptProposalCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptProposalCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateTransitionAssignmentCommandHandler() commands.TransitionAssignmentCommandHandler {
	return commands.NewTransitionAssignmentCommandHandler(c.deliveryUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateWithdrawAssignmentCommandHandler() commands.WithdrawAssignmentCommandHandler {
	return commands.NewWithdrawAssignmentCommandHandler(
		c.deliveryUoWFactory(), c.notifier, c.payouts, c.withdrawalFee, c.logger)
}

func (c *CompositionRoot) CreateConfirmPaymentSentCommandHandler() commands.ConfirmPaymentSentCommandHandler {
	return commands.NewConfirmPaymentSentCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentReceivedCommandHandler() commands.ConfirmPaymentReceivedCommandHandler {
	return commands.NewConfirmPaymentReceivedCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateRecalculatePriceFloorsCommandHandler() commands.RecalculatePriceFloorsCommandHandler {
	var f commands.FreightUoWFactory = FuncFreightUoWFactory(func() commands.FreightUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecalculatePriceFloorsCommandHandler(f, c.rates, c.logger)
}

func (c *CompositionRoot) CreateRepairAgreedPricesCommandHandler() commands.RepairAgreedPricesCommandHandler {
	return commands.NewRepairAgreedPricesCommandHandler(c.deliveryUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetEffectiveStatusQueryHandler() queries.GetEffectiveStatusQueryHandler {
	return queries.NewGetEffectiveStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFreightQuoteQueryHandler() queries.GetFreightQuoteQueryHandler {
	return queries.NewGetFreightQuoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenFreightsQueryHandler() queries.GetOpenFreightsQueryHandler {
	return queries.NewGetOpenFreightsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncFreightUoWFactory func() commands.FreightUoW

func (f FuncFreightUoWFactory) Create() commands.FreightUoW {
	return f()
}

type FuncProposalUoWFactory func() commands.ProposalUoW

func (f FuncProposalUoWFactory) Create() commands.ProposalUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
