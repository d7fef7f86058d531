package service

import (
	"context"
	"testing"

	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaySalaryDefaultsToMonthlySalary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.payroll.CreateEmployee(ctx, &EmployeeInput{
		FirstName:     "Jean",
		LastName:      "Kabongo",
		Position:      "Serveur",
		MonthlySalUSD: 15000,
	})
	require.NoError(t, err)

	payment, err := env.payroll.PaySalary(ctx, &PaySalaryInput{
		EmployeeID: employee.ID,
		Period:     "2026-08",
		PaidByID:   env.userID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15000), payment.AmountUSD)

	// An explicit amount overrides the monthly salary.
	payment, err = env.payroll.PaySalary(ctx, &PaySalaryInput{
		EmployeeID: employee.ID,
		Period:     "2026-09",
		AmountUSD:  12500,
		Note:       "advance deducted",
		PaidByID:   env.userID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12500), payment.AmountUSD)
}

func TestPaySalaryOncePerPeriod(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.payroll.CreateEmployee(ctx, &EmployeeInput{
		FirstName:     "Marie",
		LastName:      "Ilunga",
		Position:      "Caissiere",
		MonthlySalUSD: 20000,
	})
	require.NoError(t, err)

	_, err = env.payroll.PaySalary(ctx, &PaySalaryInput{
		EmployeeID: employee.ID,
		Period:     "2026-08",
		PaidByID:   env.userID,
	})
	require.NoError(t, err)

	_, err = env.payroll.PaySalary(ctx, &PaySalaryInput{
		EmployeeID: employee.ID,
		Period:     "2026-08",
		PaidByID:   env.userID,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestPaySalaryValidatesPeriodFormat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	employee, err := env.payroll.CreateEmployee(ctx, &EmployeeInput{
		FirstName:     "Paul",
		LastName:      "Mwamba",
		Position:      "Cuisinier",
		MonthlySalUSD: 18000,
	})
	require.NoError(t, err)

	for _, period := range []string{"2026-13", "2026-8", "08-2026", "aout 2026"} {
		_, err = env.payroll.PaySalary(ctx, &PaySalaryInput{
			EmployeeID: employee.ID,
			Period:     period,
			PaidByID:   env.userID,
		})
		require.Error(t, err, period)
		assert.True(t, apperror.IsKind(err, apperror.KindBadRequest), period)
	}
}

func TestListEmployeesActiveFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	kept, err := env.payroll.CreateEmployee(ctx, &EmployeeInput{
		FirstName:     "Alice",
		LastName:      "Tshala",
		Position:      "Barman",
		MonthlySalUSD: 16000,
	})
	require.NoError(t, err)

	gone, err := env.payroll.CreateEmployee(ctx, &EmployeeInput{
		FirstName:     "Bob",
		LastName:      "Ngoy",
		Position:      "Plongeur",
		MonthlySalUSD: 10000,
	})
	require.NoError(t, err)

	inactive := false
	_, err = env.payroll.UpdateEmployee(ctx, gone.ID, &EmployeeInput{}, &inactive)
	require.NoError(t, err)

	result, err := env.payroll.ListEmployees(ctx, &pagination.PaginationParams{Page: 1, PerPage: 20}, true)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, kept.ID, result.Items[0].ID)

	result, err = env.payroll.ListEmployees(ctx, &pagination.PaginationParams{Page: 1, PerPage: 20}, false)
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
}
