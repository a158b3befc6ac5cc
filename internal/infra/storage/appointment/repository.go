package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// appointmentColumns колонки таблицы appointments в порядке сканирования
var appointmentColumns = []string{
	"id",
	"business_id",
	"client_id",
	"manicurist_id",
	"service_id",
	"start_at",
	"end_at",
	"price",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её - при создании
// записи с проверкой доступности слота весь check+insert идет в одной
// сериализуемой транзакции (защита от гонки двойного бронирования)
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"business_id",
			"client_id",
			"manicurist_id",
			"service_id",
			"start_at",
			"end_at",
			"price",
			"status",
			"notes",
		).
		Values(
			appt.ID,
			appt.BusinessID,
			appt.ClientID,
			appt.ManicuristID,
			appt.ServiceID,
			appt.StartAt,
			appt.EndAt,
			appt.Price,
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// UpdateFields частичное обновление записи: мутируют только ненулевые поля
type UpdateFields struct {
	Status       *domain.AppointmentStatus
	Notes        *string
	ManicuristID *string
	ServiceID    *string
	StartAt      *time.Time
	EndAt        *time.Time
	Price        *string // decimal в строковом представлении
}

// Update применяет частичное обновление и возвращает обновленную запись
func (r *Repository) Update(ctx context.Context, id string, fields UpdateFields) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("appointments").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if fields.Status != nil {
		builder = builder.Set("status", *fields.Status)
	}
	if fields.Notes != nil {
		builder = builder.Set("notes", *fields.Notes)
	}
	if fields.ManicuristID != nil {
		builder = builder.Set("manicurist_id", *fields.ManicuristID)
	}
	if fields.ServiceID != nil {
		builder = builder.Set("service_id", *fields.ServiceID)
	}
	if fields.StartAt != nil {
		builder = builder.Set("start_at", *fields.StartAt)
	}
	if fields.EndAt != nil {
		builder = builder.Set("end_at", *fields.EndAt)
	}
	if fields.Price != nil {
		builder = builder.Set("price", *fields.Price)
	}

	query, args, err := builder.
		Suffix("RETURNING " + joinColumns(appointmentColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// FindOverlapForManicurist ищет активную запись мастера, пересекающуюся с [start, end)
// Возвращает nil, если пересечений нет. excludeID исключает собственную строку при обновлении.
// Внутри транзакции блокирует найденные строки (FOR UPDATE) - часть защиты от гонки
func (r *Repository) FindOverlapForManicurist(ctx context.Context, manicuristID string, start, end time.Time, excludeID *string) (*domain.Appointment, error) {
	return r.findOverlap(ctx, squirrel.Eq{"manicurist_id": manicuristID}, start, end, excludeID)
}

// FindOverlapForClient ищет активную запись клиента (у любого мастера),
// пересекающуюся с [start, end)
func (r *Repository) FindOverlapForClient(ctx context.Context, clientID string, start, end time.Time, excludeID *string) (*domain.Appointment, error) {
	return r.findOverlap(ctx, squirrel.Eq{"client_id": clientID}, start, end, excludeID)
}

func (r *Repository) findOverlap(ctx context.Context, owner squirrel.Eq, start, end time.Time, excludeID *string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(owner).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		// Полуоткрытое пересечение: start_at < end AND end_at > start
		Where(squirrel.Lt{"start_at": end}).
		Where(squirrel.Gt{"end_at": start}).
		OrderBy("start_at ASC").
		Limit(1)

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: findOverlap - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: findOverlap - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// ListActiveByManicuristBetween получает активные записи мастера, пересекающиеся
// с интервалом [from, to) - используется генератором слотов
func (r *Repository) ListActiveByManicuristBetween(ctx context.Context, manicuristID string, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"manicurist_id": manicuristID}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByManicuristBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByManicuristBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListDetailsByRange получает записи с данными клиента/мастера/услуги
// за интервал [from, to] по start_at, отсортированные по start_at ASC
func (r *Repository) ListDetailsByRange(ctx context.Context, from, to time.Time, filter domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"a.id", "a.business_id", "a.client_id", "a.manicurist_id", "a.service_id",
		"a.start_at", "a.end_at", "a.price", "a.status", "a.notes", "a.created_at", "a.updated_at",
		"c.name", "c.phone", "c.email",
		"m.name", "m.color",
		"s.name", "s.duration_minutes", "s.color",
	).
		From("appointments a").
		Join("clients c ON c.id = a.client_id").
		Join("manicurists m ON m.id = a.manicurist_id").
		Join("services s ON s.id = a.service_id").
		Where(squirrel.GtOrEq{"a.start_at": from}).
		Where(squirrel.LtOrEq{"a.start_at": to}).
		OrderBy("a.start_at ASC")

	if filter.BusinessID != nil {
		builder = builder.Where(squirrel.Eq{"a.business_id": *filter.BusinessID})
	}
	if filter.ManicuristID != nil {
		builder = builder.Where(squirrel.Eq{"a.manicurist_id": *filter.ManicuristID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetailsByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetailsByRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AppointmentDetails, 0)
	for rows.Next() {
		details, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDetailsByRange - scan row: %v", ErrScanRow, err)
		}
		result = append(result, details)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDetailsByRange - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// CountByStatusBetween считает записи по статусам за интервал [from, to] по start_at
func (r *Repository) CountByStatusBetween(ctx context.Context, businessID string, from, to time.Time) (map[domain.AppointmentStatus]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.GtOrEq{"start_at": from}).
		Where(squirrel.LtOrEq{"start_at": to}).
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatusBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatusBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.AppointmentStatus]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatusBetween - scan row: %v", ErrScanRow, err)
		}
		counts[domain.AppointmentStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatusBetween - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// SumCompletedRevenueBetween суммирует цены завершенных записей за интервал
func (r *Repository) SumCompletedRevenueBetween(ctx context.Context, businessID string, from, to time.Time) (decimal.Decimal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(price), 0)").
		From("appointments").
		Where(squirrel.Eq{"business_id": businessID, "status": string(domain.StatusCompleted)}).
		Where(squirrel.GtOrEq{"start_at": from}).
		Where(squirrel.LtOrEq{"start_at": to}).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumCompletedRevenueBetween - build select query: %v", ErrBuildQuery, err)
	}

	var sum string
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumCompletedRevenueBetween - scan sum: %v", ErrScanRow, err)
	}

	revenue, err := decimal.NewFromString(sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumCompletedRevenueBetween - parse sum: %v", ErrScanRow, err)
	}

	return revenue, nil
}

// ProductivityBetween агрегирует выработку мастеров за интервал:
// число завершенных записей и выручка по каждому мастеру
func (r *Repository) ProductivityBetween(ctx context.Context, businessID string, from, to time.Time) ([]*domain.ManicuristProductivity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"m.id", "m.name",
		"COUNT(a.id) FILTER (WHERE a.status = '"+string(domain.StatusCompleted)+"')",
		"COALESCE(SUM(a.price) FILTER (WHERE a.status = '"+string(domain.StatusCompleted)+"'), 0)",
	).
		From("manicurists m").
		LeftJoin("appointments a ON a.manicurist_id = m.id AND a.start_at >= ? AND a.start_at <= ?", from, to).
		Where(squirrel.Eq{"m.business_id": businessID, "m.is_active": true}).
		GroupBy("m.id", "m.name").
		OrderBy("m.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ProductivityBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ProductivityBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ManicuristProductivity, 0)
	for rows.Next() {
		var p domain.ManicuristProductivity
		var revenue string
		if err := rows.Scan(&p.ManicuristID, &p.Name, &p.CompletedCount, &revenue); err != nil {
			return nil, fmt.Errorf("%w: ProductivityBetween - scan row: %v", ErrScanRow, err)
		}
		p.Revenue, err = decimal.NewFromString(revenue)
		if err != nil {
			return nil, fmt.Errorf("%w: ProductivityBetween - parse revenue: %v", ErrScanRow, err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ProductivityBetween - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListDetailsByClient получает историю записей клиента, свежие первыми
func (r *Repository) ListDetailsByClient(ctx context.Context, clientID string, limit int) ([]*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"a.id", "a.business_id", "a.client_id", "a.manicurist_id", "a.service_id",
		"a.start_at", "a.end_at", "a.price", "a.status", "a.notes", "a.created_at", "a.updated_at",
		"c.name", "c.phone", "c.email",
		"m.name", "m.color",
		"s.name", "s.duration_minutes", "s.color",
	).
		From("appointments a").
		Join("clients c ON c.id = a.client_id").
		Join("manicurists m ON m.id = a.manicurist_id").
		Join("services s ON s.id = a.service_id").
		Where(squirrel.Eq{"a.client_id": clientID}).
		OrderBy("a.start_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetailsByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetailsByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AppointmentDetails, 0)
	for rows.Next() {
		details, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDetailsByClient - scan row: %v", ErrScanRow, err)
		}
		result = append(result, details)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDetailsByClient - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetDetailsByID получает запись с данными клиента/мастера/услуги
func (r *Repository) GetDetailsByID(ctx context.Context, id string) (*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"a.id", "a.business_id", "a.client_id", "a.manicurist_id", "a.service_id",
		"a.start_at", "a.end_at", "a.price", "a.status", "a.notes", "a.created_at", "a.updated_at",
		"c.name", "c.phone", "c.email",
		"m.name", "m.color",
		"s.name", "s.duration_minutes", "s.color",
	).
		From("appointments a").
		Join("clients c ON c.id = a.client_id").
		Join("manicurists m ON m.id = a.manicurist_id").
		Join("services s ON s.id = a.service_id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: GetDetailsByID - rows error: %v", ErrScanRow, err)
		}
		return nil, ErrAppointmentNotFound
	}

	details, err := scanDetails(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - scan row: %v", ErrScanRow, err)
	}

	return details, nil
}

// AutoCompleteExpired переводит в COMPLETED все записи со статусом PENDING/CONFIRMED,
// у которых end_at строго в прошлом. Возвращает количество обновленных строк.
// Идемпотентна: повторный вызов ничего не меняет
func (r *Repository) AutoCompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		Where(squirrel.Lt{"end_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: AutoCompleteExpired - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: AutoCompleteExpired - execute update: %v", ErrExecQuery, err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: AutoCompleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return count, nil
}

// HasFutureActiveByClient проверяет, есть ли у клиента будущие активные записи
// Используется как guard при удалении клиента
func (r *Repository) HasFutureActiveByClient(ctx context.Context, clientID string, now time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("appointments").
		Where(squirrel.Eq{"client_id": clientID}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		Where(squirrel.Gt{"start_at": now}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasFutureActiveByClient - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasFutureActiveByClient - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListNeedingReminder находит записи, стартующие в [from, to], со статусом
// PENDING/CONFIRMED, у которых нет REMINDER_24H уведомления в статусе SENT или PENDING
// Используется reconciliation sweep'ом для восстановления потерянных заданий
func (r *Repository) ListNeedingReminder(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.GtOrEq{"start_at": from}).
		Where(squirrel.LtOrEq{"start_at": to}).
		Where(squirrel.Eq{"status": activeStatusStrings()}).
		Where(squirrel.Expr(
			`NOT EXISTS (
				SELECT 1 FROM notifications n
				WHERE n.appointment_id = appointments.id
				  AND n.type = ?
				  AND n.status IN (?, ?)
			)`,
			domain.NotificationReminder24h,
			domain.NotificationSent,
			domain.NotificationPending,
		)).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListNeedingReminder - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListNeedingReminder - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(s scanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&appt.ID,
		&appt.BusinessID,
		&appt.ClientID,
		&appt.ManicuristID,
		&appt.ServiceID,
		&appt.StartAt,
		&appt.EndAt,
		&appt.Price,
		&appt.Status,
		&appt.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time
	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}
	return appointments, nil
}

func scanDetails(s scanner) (*domain.AppointmentDetails, error) {
	var details domain.AppointmentDetails
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&details.ID,
		&details.BusinessID,
		&details.ClientID,
		&details.ManicuristID,
		&details.ServiceID,
		&details.StartAt,
		&details.EndAt,
		&details.Price,
		&details.Status,
		&details.Notes,
		&createdAt,
		&updatedAt,
		&details.Client.Name,
		&details.Client.Phone,
		&details.Client.Email,
		&details.Manicurist.Name,
		&details.Manicurist.Color,
		&details.Service.Name,
		&details.Service.DurationMinutes,
		&details.Service.Color,
	)
	if err != nil {
		return nil, err
	}

	details.CreatedAt = createdAt.Time
	details.UpdatedAt = updatedAt.Time
	details.Client.ID = details.ClientID
	details.Manicurist.ID = details.ManicuristID
	details.Service.ID = details.ServiceID
	return &details, nil
}

func activeStatusStrings() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
