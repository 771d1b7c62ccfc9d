package salary_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"
	"time"

	"go-school/internal/bootstrap"
	"go-school/internal/events"
	"go-school/internal/messaging/kafka"
	kafkaMock "go-school/internal/messaging/kafka/mock"
	"go-school/internal/salary"
	salaryerrors "go-school/internal/salary/errors"
	salaryMock "go-school/internal/salary/mock"
	storageMock "go-school/internal/shared/storage/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (a *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	a.entries = append(a.entries, entry)
}

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  salary.Service
	repo     *salaryMock.MockRepository
	absences *salaryMock.MockAbsenceCounter
	outbox   *kafkaMock.MockOutboxRepository
	store    *storageMock.MockObjectStore
	audit    *recordingAudit
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	deps := &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		repo:     salaryMock.NewMockRepository(ctrl),
		absences: salaryMock.NewMockAbsenceCounter(ctrl),
		outbox:   kafkaMock.NewMockOutboxRepository(ctrl),
		store:    storageMock.NewMockObjectStore(ctrl),
		audit:    &recordingAudit{},
	}
	deps.service = salary.NewService(db, deps.repo, deps.absences, deps.outbox, deps.store, deps.audit, weekdays, time.UTC)
	salary.SetClock(deps.service, func() time.Time { return time.Date(2026, 4, 3, 9, 0, 0, 0, time.UTC) })
	return deps
}

func structureFor(schoolID, staffID string, base, hra, fixed int64, attendance bool) salary.Structure {
	return salary.Structure{
		ID:                       uuid.New(),
		SchoolID:                 uuid.MustParse(schoolID),
		StaffID:                  uuid.MustParse(staffID),
		BaseSalary:               base,
		HRA:                      hra,
		FixedDeductions:          fixed,
		AttendanceBasedDeduction: attendance,
		Cycle:                    "monthly",
		EffectiveDate:            time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSalaryService_GenerateRecords(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	withStructure := uuid.New().String()
	alreadyDone := uuid.New().String()
	noStructure := uuid.New().String()
	marchFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	marchTo := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	staff := []salary.StaffRef{{ID: withStructure}, {ID: alreadyDone}, {ID: noStructure}}

	t.Run("creates drafts and skips existing or unstructured staff", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().ActiveStaff(ctx, schoolID).Return(staff, nil)
		deps.repo.EXPECT().StructuresEffectiveBy(ctx, schoolID, marchTo).Return(map[string]salary.Structure{
			withStructure: structureFor(schoolID, withStructure, 20000, 2000, 500, true),
			alreadyDone:   structureFor(schoolID, alreadyDone, 10000, 0, 0, false),
		}, nil)
		deps.repo.EXPECT().RecordedStaff(ctx, schoolID, "2026-03").Return(map[string]bool{alreadyDone: true}, nil)
		deps.absences.EXPECT().CountStaffAbsences(ctx, schoolID, withStructure, marchFrom, marchTo).Return(2, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().InsertRecords(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, recs []salary.Record) (int64, error) {
			require.Len(t, recs, 1)
			rec := recs[0]
			assert.Equal(t, withStructure, rec.StaffID.String())
			assert.Equal(t, 22, rec.WorkingDays)
			assert.Equal(t, 2, rec.AbsentDays)
			assert.Equal(t, int64(22000), rec.Gross)
			assert.Equal(t, int64(2000), rec.AttendanceDeduction)
			assert.Equal(t, int64(19500), rec.Net)
			assert.Equal(t, salary.StatusDraft, rec.Status)
			return 1, nil
		})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.GenerateRecords(ctx, schoolID, uuid.New().String(), "2026-03")

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Generated)
		assert.Equal(t, 2, resp.Skipped)
		assert.Empty(t, resp.Errors)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("concurrent insert counts as skipped", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().ActiveStaff(ctx, schoolID).Return(staff[:1], nil)
		deps.repo.EXPECT().StructuresEffectiveBy(ctx, schoolID, marchTo).Return(map[string]salary.Structure{
			withStructure: structureFor(schoolID, withStructure, 20000, 0, 0, false),
		}, nil)
		deps.repo.EXPECT().RecordedStaff(ctx, schoolID, "2026-03").Return(map[string]bool{}, nil)
		deps.absences.EXPECT().CountStaffAbsences(ctx, schoolID, withStructure, marchFrom, marchTo).Return(0, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().InsertRecords(ctx, gomock.Any()).Return(int64(0), nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.GenerateRecords(ctx, schoolID, "", "2026-03")

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Generated)
		assert.Equal(t, 1, resp.Skipped)
	})

	t.Run("absence lookup failure is reported per staff", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().ActiveStaff(ctx, schoolID).Return(staff[:1], nil)
		deps.repo.EXPECT().StructuresEffectiveBy(ctx, schoolID, marchTo).Return(map[string]salary.Structure{
			withStructure: structureFor(schoolID, withStructure, 20000, 0, 0, true),
		}, nil)
		deps.repo.EXPECT().RecordedStaff(ctx, schoolID, "2026-03").Return(map[string]bool{}, nil)
		deps.absences.EXPECT().CountStaffAbsences(ctx, schoolID, withStructure, marchFrom, marchTo).Return(0, errors.New("db down"))

		resp, err := deps.service.GenerateRecords(ctx, schoolID, "", "2026-03")

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Generated)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, withStructure, resp.Errors[0].StaffID)
	})

	t.Run("bad period", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		for _, p := range []string{"2026-3", "2026-13", "March"} {
			_, err := deps.service.GenerateRecords(ctx, schoolID, "", p)
			assert.ErrorIs(t, err, salaryerrors.ErrInvalidPeriod, p)
		}
	})
}

func TestSalaryService_CreateRecord(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	staffID := uuid.New().String()
	febTo := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	t.Run("override applies even without attendance deduction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		override := int64(700)
		deps.repo.EXPECT().FindStaff(ctx, schoolID, staffID).Return(salary.StaffRef{ID: staffID, FullName: "Ana", StaffNo: "STF-0001"}, nil)
		deps.repo.EXPECT().FindCurrentStructure(ctx, schoolID, staffID, febTo).Return(structureFor(schoolID, staffID, 10000, 0, 0, false), nil)
		deps.absences.EXPECT().CountStaffAbsences(ctx, schoolID, staffID, gomock.Any(), febTo).Return(1, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CreateRecord(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.CreateRecord(ctx, schoolID, "", salary.CreateRecordRequest{
			StaffID: staffID, Period: "2026-02", AttendanceDeduction: &override,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(700), resp.AttendanceDeduction)
		assert.Equal(t, int64(9300), resp.Net)
		assert.Equal(t, 20, resp.WorkingDays)
		assert.Equal(t, "Ana", resp.StaffName)
	})

	t.Run("duplicate period", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindStaff(ctx, schoolID, staffID).Return(salary.StaffRef{ID: staffID}, nil)
		deps.repo.EXPECT().FindCurrentStructure(ctx, schoolID, staffID, febTo).Return(structureFor(schoolID, staffID, 10000, 0, 0, false), nil)
		deps.absences.EXPECT().CountStaffAbsences(ctx, schoolID, staffID, gomock.Any(), febTo).Return(0, nil)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CreateRecord(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_record_period"})
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.CreateRecord(ctx, schoolID, "", salary.CreateRecordRequest{StaffID: staffID, Period: "2026-02"})

		assert.ErrorIs(t, err, salaryerrors.ErrRecordAlreadyExists)
	})

	t.Run("no structure yet", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindStaff(ctx, schoolID, staffID).Return(salary.StaffRef{ID: staffID}, nil)
		deps.repo.EXPECT().FindCurrentStructure(ctx, schoolID, staffID, febTo).Return(salary.Structure{}, gorm.ErrRecordNotFound)

		_, err := deps.service.CreateRecord(ctx, schoolID, "", salary.CreateRecordRequest{StaffID: staffID, Period: "2026-02"})

		assert.ErrorIs(t, err, salaryerrors.ErrStructureNotFound)
	})
}

func TestSalaryService_Structures(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	staffID := uuid.New().String()

	t.Run("create reports gross and net before attendance", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindStaff(ctx, schoolID, staffID).Return(salary.StaffRef{ID: staffID, FullName: "Budi"}, nil)
		deps.repo.EXPECT().CreateStructure(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *salary.Structure) error {
			assert.Equal(t, "monthly", s.Cycle)
			assert.Equal(t, "2026-04-03", s.EffectiveDate.Format("2006-01-02"))
			return nil
		})

		resp, err := deps.service.CreateStructure(ctx, schoolID, salary.StructureRequest{
			StaffID: staffID, BaseSalary: 30000, HRA: 3000, OtherAllowances: 1000, FixedDeductions: 2500,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(34000), resp.Gross)
		assert.Equal(t, int64(31500), resp.NetBeforeAttendance)
		assert.Equal(t, "Budi", resp.StaffName)
	})

	t.Run("same effective date conflicts", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindStaff(ctx, schoolID, staffID).Return(salary.StaffRef{ID: staffID}, nil)
		deps.repo.EXPECT().CreateStructure(ctx, gomock.Any()).
			Return(errors.New(`ERROR: duplicate key value violates unique constraint "uq_salary_structure_effective"`))

		_, err := deps.service.CreateStructure(ctx, schoolID, salary.StructureRequest{StaffID: staffID, EffectiveDate: "2026-05-01"})

		assert.ErrorIs(t, err, salaryerrors.ErrStructureAlreadyExists)
	})

	t.Run("invalid cycle", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.CreateStructure(ctx, schoolID, salary.StructureRequest{StaffID: staffID, Cycle: "weekly"})

		assert.ErrorIs(t, err, salaryerrors.ErrInvalidCycle)
	})

	t.Run("default structure is zero from join date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().CreateStructure(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *salary.Structure) error {
			assert.Zero(t, s.BaseSalary)
			assert.False(t, s.AttendanceBasedDeduction)
			assert.Equal(t, "2026-01-15", s.EffectiveDate.Format("2006-01-02"))
			return nil
		})

		assert.NoError(t, deps.service.CreateDefaultStructure(ctx, schoolID, staffID, "2026-01-15"))
	})

	t.Run("default structure duplicate", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().CreateStructure(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_structure_effective"})

		err := deps.service.CreateDefaultStructure(ctx, schoolID, staffID, "2026-01-15")
		assert.ErrorIs(t, err, salaryerrors.ErrStructureAlreadyExists)
	})
}

func TestSalaryService_Transitions(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	actorID := uuid.New().String()
	recordID := uuid.New()

	record := func(status string) salary.Record {
		return salary.Record{ID: recordID, SchoolID: uuid.MustParse(schoolID), StaffID: uuid.New(), Period: "2026-03", Net: 19500, Status: status}
	}

	t.Run("approve moves draft to processed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRecord(ctx, schoolID, recordID.String()).Return(record(salary.StatusDraft), nil)
		deps.repo.EXPECT().UpdateRecord(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *salary.Record) error {
			assert.Equal(t, salary.StatusProcessed, r.Status)
			require.NotNil(t, r.ApprovedBy)
			assert.Equal(t, actorID, r.ApprovedBy.String())
			assert.NotNil(t, r.ProcessedAt)
			return nil
		})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Approve(ctx, schoolID, actorID, recordID.String())

		require.NoError(t, err)
		assert.Equal(t, salary.StatusProcessed, resp.Status)
	})

	t.Run("approve rejects processed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRecord(ctx, schoolID, recordID.String()).Return(record(salary.StatusProcessed), nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Approve(ctx, schoolID, actorID, recordID.String())

		assert.ErrorIs(t, err, salaryerrors.ErrNotDraft)
	})

	t.Run("mark paid queues payslip and audits", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRecord(ctx, schoolID, recordID.String()).Return(record(salary.StatusProcessed), nil)
		deps.repo.EXPECT().UpdateRecord(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.SalaryPayslipRequestedTopic, e.Topic)
			assert.Equal(t, recordID.String(), e.AggregateID)
			assert.Contains(t, string(e.Payload), recordID.String())
			return nil
		})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.MarkPaid(ctx, schoolID, actorID, recordID.String())

		require.NoError(t, err)
		assert.Equal(t, salary.StatusPaid, resp.Status)
		assert.NotNil(t, resp.PaidAt)
		require.Len(t, deps.audit.entries, 1)
		assert.Equal(t, "SALARY_MARKED_PAID", deps.audit.entries[0].Action)
	})

	t.Run("mark paid requires processed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRecord(ctx, schoolID, recordID.String()).Return(record(salary.StatusDraft), nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.MarkPaid(ctx, schoolID, actorID, recordID.String())

		assert.ErrorIs(t, err, salaryerrors.ErrNotProcessed)
		assert.Empty(t, deps.audit.entries)
	})

	t.Run("delete only in draft", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRecord(ctx, schoolID, recordID.String()).Return(record(salary.StatusPaid), nil)
		deps.sqlMock.ExpectRollback()

		err := deps.service.Delete(ctx, schoolID, recordID.String())

		assert.ErrorIs(t, err, salaryerrors.ErrNotDraft)
	})

	t.Run("missing record", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockRecord(ctx, schoolID, recordID.String()).Return(salary.Record{}, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		err := deps.service.Delete(ctx, schoolID, recordID.String())

		assert.ErrorIs(t, err, salaryerrors.ErrRecordNotFound)
	})
}

func TestSalaryService_HistoryAndPayslip(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New().String()
	ownStaff := uuid.New()
	otherStaff := uuid.New()
	recordID := uuid.New()
	teacher := salary.Actor{UserID: "u-1", Role: "TEACHER", StaffID: ownStaff.String(), SelfOnly: true}

	t.Run("teacher reads own history", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindRecords(ctx, schoolID, salary.RecordFilter{StaffID: ownStaff.String()}).
			Return([]salary.Record{{ID: uuid.New(), StaffID: ownStaff, Period: "2026-03"}, {ID: uuid.New(), StaffID: ownStaff, Period: "2026-02"}}, nil)

		items, err := deps.service.History(ctx, schoolID, teacher, ownStaff.String())

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "2026-03", items[0].Period)
	})

	t.Run("teacher cannot read others", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.History(ctx, schoolID, teacher, otherStaff.String())
		assert.ErrorIs(t, err, salaryerrors.ErrNotOwnSalary)
	})

	t.Run("payslip not generated yet", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindRecordByID(ctx, schoolID, recordID.String()).Return(salary.Record{ID: recordID, StaffID: ownStaff}, nil)

		_, err := deps.service.PayslipURL(ctx, schoolID, teacher, recordID.String())
		assert.ErrorIs(t, err, salaryerrors.ErrPayslipNotGenerated)
	})

	t.Run("payslip presigned url", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		path := "payslips/x.pdf"
		deps.repo.EXPECT().FindRecordByID(ctx, schoolID, recordID.String()).Return(salary.Record{ID: recordID, StaffID: ownStaff, PayslipPath: &path}, nil)
		deps.store.EXPECT().GeneratePresignedURL(ctx, path, 15*time.Minute).Return("https://s3/x.pdf?sig", nil)

		url, err := deps.service.PayslipURL(ctx, schoolID, teacher, recordID.String())

		require.NoError(t, err)
		assert.Equal(t, "https://s3/x.pdf?sig", url)
	})

	t.Run("generate uploads and stores path", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rec := salary.Record{
			ID: recordID, SchoolID: uuid.MustParse(schoolID), StaffID: ownStaff, StaffName: "Ana", StaffNo: "STF-0001",
			Period: "2026-03", BaseSalary: 20000, Gross: 20000, Net: 20000, Status: salary.StatusPaid,
		}
		wantPath := "payslips/" + schoolID + "/2026-03/" + recordID.String() + ".pdf"

		deps.repo.EXPECT().FindRecordByID(ctx, schoolID, recordID.String()).Return(rec, nil)
		deps.repo.EXPECT().SchoolName(ctx, schoolID).Return("Green Valley School", nil)
		deps.store.EXPECT().Upload(ctx, wantPath, gomock.Any(), "application/pdf", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, r io.Reader, _ string, size int64) (string, error) {
				body, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, int64(len(body)), size)
				assert.Contains(t, string(body), "Green Valley School")
				return wantPath, nil
			})
		deps.repo.EXPECT().SetPayslip(ctx, schoolID, recordID.String(), wantPath, gomock.Any()).Return(nil)

		path, err := deps.service.GeneratePayslip(ctx, schoolID, recordID.String())

		require.NoError(t, err)
		assert.Equal(t, wantPath, path)
	})

	t.Run("generate for deleted record", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindRecordByID(ctx, schoolID, recordID.String()).Return(salary.Record{}, gorm.ErrRecordNotFound)

		_, err := deps.service.GeneratePayslip(ctx, schoolID, recordID.String())
		assert.ErrorIs(t, err, salaryerrors.ErrRecordNotFound)
	})
}

func TestRenderPayslip(t *testing.T) {
	paid := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	pdf := string(salary.RenderPayslip("St. (Mary) School", salary.Record{
		StaffName: "Ana", StaffNo: "STF-0001", Period: "2026-03",
		BaseSalary: 2000000, HRA: 200000, Gross: 2200000,
		FixedDeductions: 50000, AttendanceDeduction: 200000, Net: 1950000,
		WorkingDays: 22, AbsentDays: 2, PaidAt: &paid,
	}))

	assert.True(t, len(pdf) > 0 && pdf[:8] == "%PDF-1.4")
	assert.Contains(t, pdf, `St. \(Mary\) School`)
	assert.Contains(t, pdf, "(19500.00) Tj")
	assert.Contains(t, pdf, "Attendance \\(2 of 22 days absent\\)")
	assert.Contains(t, pdf, "Paid on 2026-04-01")
	assert.Contains(t, pdf, "%%EOF")
}
