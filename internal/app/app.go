package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/fenestra/internal/config"
	"github.com/MrJamesThe3rd/fenestra/internal/database"
	"github.com/MrJamesThe3rd/fenestra/internal/document"
	"github.com/MrJamesThe3rd/fenestra/internal/dynamo"
	"github.com/MrJamesThe3rd/fenestra/internal/export"
	"github.com/MrJamesThe3rd/fenestra/internal/importer"
	"github.com/MrJamesThe3rd/fenestra/internal/pricebook"
	pricebookDynamo "github.com/MrJamesThe3rd/fenestra/internal/pricebook/dynamostore"
	pricebookStore "github.com/MrJamesThe3rd/fenestra/internal/pricebook/store"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	quotationDynamo "github.com/MrJamesThe3rd/fenestra/internal/quotation/dynamostore"
	quotationStore "github.com/MrJamesThe3rd/fenestra/internal/quotation/store"
)

// Services holds everything the API and the TUI share.
type Services struct {
	Quotations *quotation.Service
	Pricebook  *pricebook.Service
	Importer   *importer.Service
	Export     *export.Service
	Renderer   *document.Renderer

	close func() error
}

func (s *Services) Close() error {
	if s.close == nil {
		return nil
	}

	return s.close()
}

// New opens the configured store and builds the services on top of it.
func New(ctx context.Context, cfg *config.Config) (*Services, error) {
	var (
		quotationRepo quotation.Repository
		pricebookRepo pricebook.Repository
		closer        func() error
	)

	switch cfg.Store.Driver {
	case config.DriverDynamo:
		client, err := dynamo.New(ctx, dynamo.Options{
			Region:          cfg.Dynamo.Region,
			Endpoint:        cfg.Dynamo.Endpoint,
			AccessKeyID:     cfg.Dynamo.AccessKeyID,
			SecretAccessKey: cfg.Dynamo.SecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create dynamodb client: %w", err)
		}

		quotationRepo = quotationDynamo.New(client, quotationDynamo.Tables{
			Quotations: cfg.Dynamo.QuotationsTable,
			Sequences:  cfg.Dynamo.SequencesTable,
		})
		pricebookRepo = pricebookDynamo.New(client, cfg.Dynamo.PricebookTable)

		slog.Info("using dynamodb store", "region", cfg.Dynamo.Region, "endpoint", cfg.Dynamo.Endpoint)
	default:
		db, err := openPostgres(cfg)
		if err != nil {
			return nil, err
		}

		quotationRepo = quotationStore.New(db)
		pricebookRepo = pricebookStore.New(db)
		closer = db.Close

		slog.Info("using postgres store", "host", cfg.DB.Host, "database", cfg.DB.Name)
	}

	pricebookSvc := pricebook.NewService(pricebookRepo)

	quotationSvc := quotation.NewService(quotationRepo, pricebookSvc, quotation.Settings{
		NumberPrefix: cfg.Quotation.NumberPrefix,
		GSTRate:      cfg.Quotation.GSTRate,
		Charges: quotation.Charges{
			Transport: cfg.Quotation.Transport,
			Loading:   cfg.Quotation.Loading,
		},
		Company: quotation.Company{
			Name:    cfg.Company.Name,
			Address: cfg.Company.Address,
			Phone:   cfg.Company.Phone,
			Email:   cfg.Company.Email,
			GSTIN:   cfg.Company.GSTIN,
			Website: cfg.Company.Website,
		},
	})

	renderer := document.NewRenderer(document.Config{ValidityDays: cfg.Quotation.ValidityDays})

	return &Services{
		Quotations: quotationSvc,
		Pricebook:  pricebookSvc,
		Importer:   importer.NewService(quotationSvc),
		Export:     export.NewService(quotationSvc, renderer, cfg.Quotation.ExportWorkers),
		Renderer:   renderer,
		close:      closer,
	}, nil
}

func openPostgres(cfg *config.Config) (*sql.DB, error) {
	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpen:     cfg.DB.MaxOpen,
		MaxIdle:     cfg.DB.MaxIdle,
		MaxLifetime: cfg.DB.MaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DB.Migrate {
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	return db, nil
}
