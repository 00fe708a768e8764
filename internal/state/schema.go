package state

import "database/sql"

const currentSchemaVersion = 1

// initSchema creates the tables and stamps the schema version in one
// transaction so a crash mid-init cannot leave a half-built database.
func initSchema(db *sql.DB) error {
	return withTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS layout_state (
			mode INTEGER PRIMARY KEY,

			legacy_style INTEGER NOT NULL DEFAULT 0,
			top_bar_placement INTEGER NOT NULL DEFAULT 0,
			bottom_bar_placement INTEGER NOT NULL DEFAULT 0,
			enable_osc INTEGER NOT NULL DEFAULT 0,
			osc_position INTEGER NOT NULL DEFAULT 0,

			leading_sidebar_placement INTEGER NOT NULL DEFAULT 0,
			leading_sidebar_visible INTEGER NOT NULL DEFAULT 0,
			leading_sidebar_tab INTEGER NOT NULL DEFAULT 0,
			leading_sidebar_width REAL NOT NULL DEFAULT 0,
			trailing_sidebar_placement INTEGER NOT NULL DEFAULT 0,
			trailing_sidebar_visible INTEGER NOT NULL DEFAULT 0,
			trailing_sidebar_tab INTEGER NOT NULL DEFAULT 0,
			trailing_sidebar_width REAL NOT NULL DEFAULT 0,

			frame_x REAL NOT NULL,
			frame_y REAL NOT NULL,
			frame_w REAL NOT NULL,
			frame_h REAL NOT NULL,
			top_margin REAL NOT NULL DEFAULT 0,
			outer_top REAL NOT NULL DEFAULT 0,
			outer_bottom REAL NOT NULL DEFAULT 0,
			outer_leading REAL NOT NULL DEFAULT 0,
			outer_trailing REAL NOT NULL DEFAULT 0,
			inner_top REAL NOT NULL DEFAULT 0,
			inner_bottom REAL NOT NULL DEFAULT 0,
			inner_leading REAL NOT NULL DEFAULT 0,
			inner_trailing REAL NOT NULL DEFAULT 0,
			video_aspect REAL NOT NULL,
			video_w REAL NOT NULL DEFAULT 0,
			video_h REAL NOT NULL DEFAULT 0
		);
	`); err != nil {
			return err
		}

		_, err := tx.Exec(`
			INSERT OR IGNORE INTO schema_version (version) VALUES (?)
		`, currentSchemaVersion)
		return err
	})
}
