package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/invoicing/internal/billing"
	"github.com/xenking/invoicing/internal/domain/catalog"
	"github.com/xenking/invoicing/internal/export"
)

type sheetJSON struct {
	Customers []customerJSON `json:"customers"`
	Items     []itemJSON     `json:"items"`
	Invoices  []invoiceJSON  `json:"invoices"`
}

type customerJSON struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	NationalID string `json:"nationalId"`
}

type itemJSON struct {
	Type       catalog.Kind    `json:"type"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Weight     decimal.Decimal `json:"weight"`
	LicenseKey string          `json:"licenseKey"`
}

type invoiceJSON struct {
	NationalID string     `json:"nationalId"`
	Lines      []lineJSON `json:"lines"`
}

type lineJSON struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

// run loads the sheet, builds every invoice through the billing service and
// exports each one in all formats. It returns the written paths.
func run(ctx context.Context, sheetFile, outDir string, compress bool) ([]string, error) {
	slog.Info("reading sheet file", slog.String("path", sheetFile))

	data, err := os.ReadFile(sheetFile)
	if err != nil {
		return nil, errors.Wrap(err, "read sheet file")
	}

	var sheet sheetJSON
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, errors.Wrap(err, "parse sheet JSON")
	}

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return nil, errors.Wrap(err, "create output dir")
	}
	writer := export.NewFileWriter(export.FileWriterConfig{Dir: outDir, Compress: compress})
	svc := billing.NewService(writer)

	if err := loadCustomers(svc, sheet.Customers); err != nil {
		return nil, errors.Wrap(err, "load customers")
	}
	if err := loadItems(svc, sheet.Items); err != nil {
		return nil, errors.Wrap(err, "load items")
	}

	var paths []string
	for i, inv := range sheet.Invoices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		written, err := exportInvoice(ctx, svc, writer, inv)
		if err != nil {
			return nil, errors.Wrapf(err, "invoice %d", i+1)
		}
		paths = append(paths, written...)
	}

	return paths, nil
}

func loadCustomers(svc *billing.Service, customers []customerJSON) error {
	for _, c := range customers {
		if _, err := svc.RegisterCustomer(c.FirstName, c.LastName, c.NationalID); err != nil {
			return err
		}
	}
	slog.Info("customers loaded", slog.Int("count", len(customers)))
	return nil
}

func loadItems(svc *billing.Service, items []itemJSON) error {
	for _, it := range items {
		var err error
		switch it.Type {
		case catalog.KindPhysical:
			_, err = svc.RegisterPhysicalItem(it.Code, it.Name, it.Price, it.Weight)
		case catalog.KindDigital:
			_, err = svc.RegisterDigitalItem(it.Code, it.Name, it.Price, it.LicenseKey)
		default:
			err = errors.Errorf("item %q: unknown type %q", it.Code, it.Type)
		}
		if err != nil {
			return err
		}
	}
	slog.Info("items loaded", slog.Int("count", len(items)))
	return nil
}

// exportInvoice builds one invoice and writes its snapshot in every format
// concurrently.
func exportInvoice(ctx context.Context, svc *billing.Service, writer *export.FileWriter, in invoiceJSON) ([]string, error) {
	inv, err := svc.CreateInvoice(in.NationalID)
	if err != nil {
		return nil, err
	}
	for _, l := range in.Lines {
		if err := svc.AddLineToInvoice(l.Code, l.Quantity); err != nil {
			return nil, err
		}
	}

	snap := inv.Snapshot()
	paths := make([]string, len(export.Formats))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range export.Formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := writer.Export(snap, f)
			if err != nil {
				return errors.Wrapf(err, "export %s", f)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("invoice exported",
		slog.String("national_id", snap.NationalID),
		slog.String("total", export.Display(snap.Total)),
		slog.Int("lines", len(snap.Lines)),
	)
	return paths, nil
}
