package routes

import (
	"context"
	"fmt"

	"obsydia_retail/internal/adapter/notification"
	"obsydia_retail/internal/adapter/persistence/repository"
	"obsydia_retail/internal/config"
	"obsydia_retail/internal/infrastructure/database"
	"obsydia_retail/internal/infrastructure/email"
	"obsydia_retail/internal/infrastructure/idgen"
	"obsydia_retail/internal/infrastructure/logging"
	"obsydia_retail/internal/infrastructure/queue"
	"obsydia_retail/internal/usecase"
	"obsydia_retail/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// BuildDependencies constructs repositories, notifiers and use cases from
// cfg. The returned cleanup closes any database handle.
func BuildDependencies(ctx context.Context, cfg config.Config) (Dependencies, func(), error) {
	repo, cleanup, err := buildOrderRepository(ctx, cfg)
	if err != nil {
		return Dependencies{}, func() {}, err
	}

	notifier, err := buildNotifier(ctx, cfg)
	if err != nil {
		cleanup()
		return Dependencies{}, func() {}, err
	}

	auth, err := buildAdminAuth(cfg.Admin)
	if err != nil {
		cleanup()
		return Dependencies{}, func() {}, err
	}

	messages := notification.NewMessageBuilder(cfg.PaymentNumber)
	orders := usecase.NewOrderUseCase(repo, notifier, messages, idgen.NewOrderIDGenerator(), usecase.OrderUseCaseConfig{
		AdminRecipients: cfg.AdminEmails,
		Currency:        cfg.QuoteCurrency,
	})

	return Dependencies{Orders: orders, Auth: auth, Messages: messages}, cleanup, nil
}

func buildOrderRepository(ctx context.Context, cfg config.Config) (interfaces.IOrderRepository, func(), error) {
	noop := func() {}

	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, noop, fmt.Errorf("dynamodb: %w", err)
		}
		return repository.NewOrderDynamoRepository(ddb, cfg.AWS.OrdersTable), noop, nil

	case config.StoragePostgres:
		db, err := database.NewPostgresDB(ctx, cfg.Postgres)
		if err != nil {
			return nil, noop, err
		}
		if err := database.InitSchema(ctx, db, database.DialectPostgres); err != nil {
			database.CloseDB(db)
			return nil, noop, err
		}
		return repository.NewOrderSQLRepository(db, database.DialectPostgres), func() { database.CloseDB(db) }, nil

	case config.StorageSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.SQLite)
		if err != nil {
			return nil, noop, err
		}
		if err := database.InitSchema(ctx, db, database.DialectSQLite); err != nil {
			database.CloseDB(db)
			return nil, noop, err
		}
		return repository.NewOrderSQLRepository(db, database.DialectSQLite), func() { database.CloseDB(db) }, nil

	case config.StorageMemory:
		logging.L().Warnf("[storage] using in-memory order storage; orders are lost on restart")
		return repository.NewOrderMemoryRepository(), noop, nil

	case config.StorageNone:
		logging.L().Warnf("[storage] order storage disabled; orders are only emailed and quotes cannot be issued")
		return nil, noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

func buildNotifier(ctx context.Context, cfg config.Config) (interfaces.INotifier, error) {
	switch cfg.Email.Notifier {
	case config.NotifierSMTP2GO:
		return email.NewSMTP2GOGateway(cfg.Email, nil), nil
	case config.NotifierSQS:
		client, err := queue.NewSQSClient(ctx, cfg.AWS, cfg.SQS.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("sqs: %w", err)
		}
		return queue.NewSQSNotifier(client, cfg.SQS.QueueURL), nil
	default:
		return nil, fmt.Errorf("unknown NOTIFIER %q", cfg.Email.Notifier)
	}
}

// buildAdminAuth prefers a pre-computed bcrypt hash over a plain password.
// Without JWT_SECRET a per-process secret is generated, so tokens do not
// survive a restart.
func buildAdminAuth(cfg config.AdminConfig) (*usecase.AdminAuthUseCase, error) {
	var hash []byte
	switch {
	case cfg.PasswordHash != "":
		hash = []byte(cfg.PasswordHash)
	case cfg.Password != "":
		h, err := usecase.HashAdminPassword(cfg.Password)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		hash = h
	}

	secret := cfg.JWTSecret
	if secret == "" && cfg.Username != "" && len(hash) > 0 {
		logging.L().Warnf("[admin][auth] JWT_SECRET not set; generating an ephemeral signing secret")
		secret = uuid.NewString() + uuid.NewString()
	}
	if cfg.Username == "" || len(hash) == 0 {
		logging.L().Warnf("[admin][auth] admin account not configured; admin routes will reject every login")
	}

	return usecase.NewAdminAuthUseCase(usecase.AdminCredentials{
		Username:     cfg.Username,
		PasswordHash: hash,
		JWTSecret:    []byte(secret),
		TokenTTL:     cfg.TokenTTL,
	}), nil
}
