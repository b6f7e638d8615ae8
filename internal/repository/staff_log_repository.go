package repository

import (
	"time"

	"gorm.io/gorm"

	"cjpowerhouse-backend/internal/model"
)

// LogFilter narrows the admin staff-log listing. Admin and Customer rows are
// always excluded; Role further restricts to a single staff role.
type LogFilter struct {
	From time.Time
	To   time.Time
	Role string
}

// DutyHoursFilter selects the closed sessions whose stored durations feed the
// pay calculation. StaffID/StaffRole pin one staff member; Role alone pins a
// role group; both empty aggregates across all accounted staff.
type DutyHoursFilter struct {
	From      time.Time
	To        time.Time
	Role      string
	StaffID   uint
	StaffRole string
}

type StaffLogRepository interface {
	Open(staffID uint, role, action string, timeIn time.Time) (*model.StaffLog, error)
	LatestOpen(staffID uint, role string) (*model.StaffLog, error)
	CloseLatestOpen(staffID uint, role string) error
	CloseByID(id uint) error
	CloseSwept(id uint, timeOut time.Time, dutyMinutes int) error
	OverdueOpen(openedBefore time.Time) ([]model.StaffLog, error)
	CompletedMinutes(staffID uint, role string, dayStart, dayEnd time.Time) (int, error)
	List(f LogFilter, limit, offset int) ([]model.StaffLogRow, error)
	Count(f LogFilter) (int64, error)
	SumDutyMinutes(f DutyHoursFilter) (int, error)
	StaffOptions() ([]model.StaffOption, error)
	HasOpenLoginSession(staffID uint, role string) (bool, error)
}

type staffLogRepository struct {
	db *gorm.DB
}

func NewStaffLogRepository(db *gorm.DB) StaffLogRepository {
	return &staffLogRepository{db}
}

func (r *staffLogRepository) Open(staffID uint, role, action string, timeIn time.Time) (*model.StaffLog, error) {
	log := model.StaffLog{
		StaffID: staffID,
		Role:    role,
		Action:  action,
		TimeIn:  timeIn,
	}
	if err := r.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// LatestOpen returns the authoritative open session: the open row with the
// most recent time_in. Older stray opens are ignored until the sweeper
// catches them.
func (r *staffLogRepository) LatestOpen(staffID uint, role string) (*model.StaffLog, error) {
	var log model.StaffLog
	err := r.db.Where("staff_id = ? AND role = ? AND time_out IS NULL", staffID, role).
		Order("time_in DESC").First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// CloseLatestOpen records a normal logout: time_out now, duration uncapped.
func (r *staffLogRepository) CloseLatestOpen(staffID uint, role string) error {
	return r.db.Exec(`
		UPDATE staff_logs
		   SET time_out = NOW(),
		       duty_duration_minutes = TIMESTAMPDIFF(MINUTE, time_in, NOW())
		 WHERE id = (
		       SELECT id FROM (
		           SELECT id FROM staff_logs
		           WHERE staff_id = ? AND role = ? AND time_out IS NULL
		           ORDER BY time_in DESC LIMIT 1
		       ) AS t
		 )`, staffID, role).Error
}

func (r *staffLogRepository) CloseByID(id uint) error {
	return r.db.Exec(`
		UPDATE staff_logs
		   SET time_out = NOW(),
		       duty_duration_minutes = TIMESTAMPDIFF(MINUTE, time_in, NOW())
		 WHERE id = ? AND time_out IS NULL`, id).Error
}

// CloseSwept force-closes an overdue session with a pre-capped duration.
func (r *staffLogRepository) CloseSwept(id uint, timeOut time.Time, dutyMinutes int) error {
	return r.db.Model(&model.StaffLog{}).
		Where("id = ? AND time_out IS NULL", id).
		Updates(map[string]interface{}{
			"time_out":              timeOut,
			"duty_duration_minutes": dutyMinutes,
		}).Error
}

func (r *staffLogRepository) OverdueOpen(openedBefore time.Time) ([]model.StaffLog, error) {
	var logs []model.StaffLog
	err := r.db.Where("time_out IS NULL AND time_in <= ?", openedBefore).Find(&logs).Error
	return logs, err
}

// CompletedMinutes sums, over every closed session intersecting the day
// window, the overlap with that window. Computed set-based in SQL so a
// session spanning midnight only contributes its in-day portion.
func (r *staffLogRepository) CompletedMinutes(staffID uint, role string, dayStart, dayEnd time.Time) (int, error) {
	var total *int
	err := r.db.Raw(`
		SELECT SUM(
		           GREATEST(0, TIMESTAMPDIFF(
		               MINUTE,
		               GREATEST(time_in, ?),
		               LEAST(time_out, ?)
		           ))
		       ) AS total_minutes
		  FROM staff_logs
		 WHERE staff_id = ? AND role = ?
		   AND time_out IS NOT NULL
		   AND time_in <= ? AND time_out >= ?`,
		dayStart, dayEnd, staffID, role, dayEnd, dayStart).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil || *total < 0 {
		return 0, nil
	}
	return *total, nil
}

const staffNameJoins = `
	LEFT JOIN riders r ON l.role = 'Rider' AND r.id = l.staff_id
	LEFT JOIN mechanics m ON l.role = 'Mechanic' AND m.id = l.staff_id
	LEFT JOIN cjusers cj ON (l.role = 'Admin' OR l.role = 'Cashier') AND cj.id = l.staff_id`

func (r *staffLogRepository) List(f LogFilter, limit, offset int) ([]model.StaffLogRow, error) {
	var rows []model.StaffLogRow
	sql := `
		SELECT l.id, l.staff_id, l.role, l.action, l.activity, l.time_in, l.time_out,
		       l.duty_duration_minutes, l.created_at,
		       COALESCE(r.first_name, m.first_name, cj.first_name, '') AS first_name,
		       COALESCE(r.last_name, m.last_name, cj.last_name, '') AS last_name
		  FROM staff_logs l` + staffNameJoins + `
		 WHERE DATE(l.time_in) BETWEEN ? AND ? AND l.role NOT IN ('Admin', 'Customer')`
	args := []interface{}{f.From.Format("2006-01-02"), f.To.Format("2006-01-02")}
	if f.Role != "" {
		sql += " AND l.role = ?"
		args = append(args, f.Role)
	}
	sql += " ORDER BY l.time_in DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	err := r.db.Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

func (r *staffLogRepository) Count(f LogFilter) (int64, error) {
	var count int64
	q := r.db.Model(&model.StaffLog{}).
		Where("DATE(time_in) BETWEEN ? AND ?", f.From.Format("2006-01-02"), f.To.Format("2006-01-02")).
		Where("role NOT IN ('Admin', 'Customer')")
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	err := q.Count(&count).Error
	return count, err
}

// SumDutyMinutes totals the stored durations of closed sessions in range.
// Open sessions are excluded: pay is computed from settled records only.
func (r *staffLogRepository) SumDutyMinutes(f DutyHoursFilter) (int, error) {
	var total *int
	q := r.db.Model(&model.StaffLog{}).
		Select("SUM(duty_duration_minutes)").
		Where("DATE(time_in) BETWEEN ? AND ?", f.From.Format("2006-01-02"), f.To.Format("2006-01-02")).
		Where("role NOT IN ('Admin', 'Customer')").
		Where("time_out IS NOT NULL")
	if f.StaffID != 0 && f.StaffRole != "" {
		q = q.Where("staff_id = ? AND role = ?", f.StaffID, f.StaffRole)
	} else if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if err := q.Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *staffLogRepository) StaffOptions() ([]model.StaffOption, error) {
	var opts []model.StaffOption
	err := r.db.Raw(`
		SELECT DISTINCT l.staff_id, l.role,
		       COALESCE(r.first_name, m.first_name, cj.first_name, '') AS first_name,
		       COALESCE(r.last_name, m.last_name, cj.last_name, '') AS last_name
		  FROM staff_logs l` + staffNameJoins + `
		 WHERE l.role NOT IN ('Admin', 'Customer')
		 ORDER BY l.role, first_name, last_name`).Scan(&opts).Error
	return opts, err
}

// HasOpenLoginSession backs the online/offline badge: an open session with
// action 'login' means the staff member is on duty right now, regardless of
// whether the daily requirement is met.
func (r *staffLogRepository) HasOpenLoginSession(staffID uint, role string) (bool, error) {
	var count int64
	err := r.db.Model(&model.StaffLog{}).
		Where("staff_id = ? AND role = ? AND action = 'login' AND time_out IS NULL", staffID, role).
		Count(&count).Error
	return count > 0, err
}
