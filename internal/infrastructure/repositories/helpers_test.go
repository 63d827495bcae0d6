package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE accounts (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		kind TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		is_staff BOOLEAN NOT NULL DEFAULT 0,
		is_superuser BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createStudentTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE student_profiles (
		account_id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		phone_number TEXT UNIQUE NOT NULL,
		email_verified BOOLEAN NOT NULL DEFAULT 0,
		phone_number_verified BOOLEAN NOT NULL DEFAULT 0,
		phone_verified_at DATETIME,
		current_education_level_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE student_tags (
		student_profile_account_id TEXT NOT NULL,
		tag_id TEXT NOT NULL,
		PRIMARY KEY (student_profile_account_id, tag_id)
	);`)
	mustExec(t, db, `CREATE TABLE student_interests (
		student_profile_account_id TEXT NOT NULL,
		interest_id TEXT NOT NULL,
		PRIMARY KEY (student_profile_account_id, interest_id)
	);`)
	mustExec(t, db, `CREATE TABLE student_locations (
		student_profile_account_id TEXT NOT NULL,
		location_id TEXT NOT NULL,
		PRIMARY KEY (student_profile_account_id, location_id)
	);`)
	mustExec(t, db, `CREATE TABLE student_wishlist (
		student_profile_account_id TEXT NOT NULL,
		course_id TEXT NOT NULL,
		PRIMARY KEY (student_profile_account_id, course_id)
	);`)
}

func createInstituteTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE institute_profiles (
		account_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		logo_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE institute_details (
		id TEXT PRIMARY KEY,
		institute_id TEXT NOT NULL,
		detail TEXT NOT NULL,
		info TEXT NOT NULL
	);`)
}

func createOtpTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE otps (
		id TEXT PRIMARY KEY,
		phone_number TEXT NOT NULL,
		code TEXT NOT NULL,
		created_at DATETIME,
		expires_at DATETIME NOT NULL
	);`)
}

func createCourseTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE courses (
		id TEXT PRIMARY KEY,
		offered_by TEXT NOT NULL,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		mode TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		duration_weeks INTEGER NOT NULL DEFAULT 2,
		fee_amount INTEGER NOT NULL DEFAULT 0,
		syllabus_url TEXT,
		fee_breakdown_url TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE batches (
		id TEXT PRIMARY KEY,
		course_id TEXT NOT NULL,
		location TEXT NOT NULL,
		commencement_date DATE,
		discount REAL NOT NULL DEFAULT 0
	);`)
	mustExec(t, db, `CREATE TABLE eligibility_criteria (
		id TEXT PRIMARY KEY,
		course_id TEXT NOT NULL,
		detail TEXT NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE application_form_fields (
		id TEXT PRIMARY KEY,
		course_id TEXT NOT NULL,
		label TEXT NOT NULL,
		type TEXT NOT NULL,
		required BOOLEAN NOT NULL DEFAULT 0
	);`)
	mustExec(t, db, `CREATE TABLE course_tags (
		course_id TEXT NOT NULL,
		tag_id TEXT NOT NULL,
		PRIMARY KEY (course_id, tag_id)
	);`)
}

func createApplicationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE applications (
		id TEXT PRIMARY KEY,
		applied_by TEXT NOT NULL,
		course_id TEXT NOT NULL,
		batch_id TEXT NOT NULL,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		date_of_birth DATE NOT NULL,
		status TEXT NOT NULL,
		submitted_on DATETIME,
		updated_on DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE application_form_responses (
		id TEXT PRIMARY KEY,
		application_id TEXT NOT NULL,
		form_field_id TEXT NOT NULL,
		value_text TEXT,
		value_number REAL,
		value_file TEXT
	);`)
}

func createPreferenceTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tags (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		type TEXT NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE interests (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		image_url TEXT
	);`)
	mustExec(t, db, `CREATE TABLE locations (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		image_url TEXT
	);`)
	mustExec(t, db, `CREATE TABLE education_levels (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		image_url TEXT
	);`)
}
