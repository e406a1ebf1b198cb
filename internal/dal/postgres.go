package dal

import (
	"context"
	"fmt"
	"time"

	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// ChampionRecord is a row of the champions table.
type ChampionRecord struct {
	Name  string         `gorm:"primaryKey"`
	Roles pq.StringArray `gorm:"type:text[];not null"`
}

func (ChampionRecord) TableName() string { return "champions" }

func (r ChampionRecord) Champion() champion.Champion {
	return champion.Champion{Name: r.Name, Roles: append([]string{}, r.Roles...)}
}

func recordOf(c champion.Champion) ChampionRecord {
	return ChampionRecord{Name: c.Name, Roles: pq.StringArray(append([]string{}, c.Roles...))}
}

type PostgresSource struct {
	db *gorm.DB
}

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Only read at startup, a small pool is enough.
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

func NewPostgresSource(db *gorm.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&ChampionRecord{})
}

// Seed upserts champs, replacing the roles of names already present.
func (s *PostgresSource) Seed(ctx context.Context, champs []champion.Champion) error {
	if len(champs) == 0 {
		return nil
	}
	records := make([]ChampionRecord, len(champs))
	for i, c := range champs {
		records[i] = recordOf(c)
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"roles"}),
		}).
		Create(&records).Error
}

func (s *PostgresSource) LoadChampions(ctx context.Context) ([]champion.Champion, error) {
	var records []ChampionRecord
	if err := s.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, err
	}
	champs := make([]champion.Champion, len(records))
	for i, r := range records {
		champs[i] = r.Champion()
	}
	return champs, nil
}

func (s *PostgresSource) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
