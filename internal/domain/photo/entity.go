package photo

import (
	"fmt"
	"strings"
	"time"
)

// Photo is the metadata of one uploaded file. The bytes live in Storage at
// FilePath; the record is written only after they have been stored.
type Photo struct {
	ID               int64     `json:"id"`
	OriginalFileName *string   `json:"originalFileName"`
	StoredFileName   string    `json:"storedFileName"`
	FilePath         string    `json:"filePath"`
	FileSize         int64     `json:"fileSize"`
	MimeType         *string   `json:"mimeType"`
	UploadDate       LocalTime `json:"uploadDate"`
}

// LocalTimeLayout renders a local wall-clock time without a zone offset.
// Trailing zero fractional digits are dropped.
const LocalTimeLayout = "2006-01-02T15:04:05.999999999"

// LocalTime serializes as a zone-less local timestamp.
type LocalTime time.Time

func (t LocalTime) Time() time.Time { return time.Time(t) }

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Local().Format(LocalTimeLayout) + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*t = LocalTime{}
		return nil
	}
	parsed, err := time.ParseInLocation(LocalTimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("parse upload date %q: %w", s, err)
	}
	*t = LocalTime(parsed)
	return nil
}

// photoRow is the persisted shape of Photo in the photos table.
type photoRow struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OriginalFileName *string   `gorm:"column:original_file_name"`
	StoredFileName   string    `gorm:"column:stored_file_name;not null;uniqueIndex"`
	FilePath         string    `gorm:"column:file_path;not null"`
	FileSize         int64     `gorm:"column:file_size;not null"`
	MimeType         *string   `gorm:"column:mime_type"`
	UploadDate       time.Time `gorm:"column:upload_date;not null"`
}

func (photoRow) TableName() string { return "photos" }

func toRow(p *Photo) photoRow {
	return photoRow{
		ID:               p.ID,
		OriginalFileName: p.OriginalFileName,
		StoredFileName:   p.StoredFileName,
		FilePath:         p.FilePath,
		FileSize:         p.FileSize,
		MimeType:         p.MimeType,
		UploadDate:       time.Time(p.UploadDate),
	}
}

func fromRow(r photoRow) Photo {
	return Photo{
		ID:               r.ID,
		OriginalFileName: r.OriginalFileName,
		StoredFileName:   r.StoredFileName,
		FilePath:         r.FilePath,
		FileSize:         r.FileSize,
		MimeType:         r.MimeType,
		UploadDate:       LocalTime(r.UploadDate),
	}
}

// Extension returns the part of name from the last '.' onward, dot
// included. It is empty when name has no dot.
func Extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i:]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
