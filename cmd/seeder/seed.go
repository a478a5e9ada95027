package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/jaswdr/faker"
	"github.com/olekukonko/tablewriter"
	"github.com/tamathecxder/randomail"

	"employee_service/internal/feature/employee/domain/entity"
	"employee_service/internal/feature/employee/usecase"
	"employee_service/internal/platform/logger"
)

// creator is the slice of the business layer the seeder needs.
type creator interface {
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Employee, error)
}

// generator produces fake employee fields.
type generator struct {
	FirstName func() string
	Email     func() string
	Phone     func() string
}

func newGenerator() generator {
	f := faker.New()
	p := f.Person()
	ph := f.Phone()
	return generator{
		FirstName: p.FirstName,
		Email:     randomail.GenerateRandomEmail,
		Phone:     ph.Number,
	}
}

type seedResult struct {
	Created []entity.Employee
	Skipped int // emails that were already taken
}

// seed creates n employees. Duplicate emails are counted and skipped;
// any other error stops the run.
func seed(ctx context.Context, uc creator, gen generator, n int) (seedResult, error) {
	var res seedResult
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		phone := gen.Phone()
		e, err := uc.Create(ctx, usecase.CreateInput{
			Name:  gen.FirstName(),
			Email: gen.Email(),
			Phone: &phone,
		})
		if err != nil {
			if errors.Is(err, usecase.ErrEmailAlreadyExists) {
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("create employee %d of %d: %w", i+1, n, err)
		}
		res.Created = append(res.Created, *e)
	}
	return res, nil
}

// printSummary renders the created employees as a table.
func printSummary(w io.Writer, res seedResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"id", "first name", "email", "phone"})
	for _, e := range res.Created {
		phone := ""
		if e.Phone != nil {
			phone = *e.Phone
		}
		table.Append([]string{strconv.FormatUint(uint64(e.ID), 10), e.FirstName, e.Email, phone})
	}
	table.SetFooter([]string{"", "", "skipped", strconv.Itoa(res.Skipped)})
	table.Render()
}

// closeDB closes the connection pool and logs a failure.
func closeDB(log *slog.Logger, c io.Closer) {
	if err := c.Close(); err != nil {
		log.Error("failed to close database", logger.Err(err))
	}
}
