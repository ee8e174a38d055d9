package sqlite

import (
	"context"
	"log/slog"

	"shopfront/config"
	"shopfront/internal/errors"

	"gorm.io/gorm"
)

// migration is one versioned schema step. Applied versions are recorded in
// schema_migrations so reruns are no-ops.
type migration struct {
	version    int
	name       string
	statements []string
}

var migrations = []migration{
	{
		version: 1,
		name:    "create users and sessions",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				email VARCHAR(255) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL DEFAULT '',
				name VARCHAR(100) NOT NULL,
				nickname VARCHAR(100) NOT NULL DEFAULT '',
				provider VARCHAR(20) NOT NULL DEFAULT 'local',
				google_id VARCHAR(255) NOT NULL DEFAULT '',
				github_id VARCHAR(255) NOT NULL DEFAULT '',
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_users_google_id ON users(google_id) WHERE google_id != ''`,
			`CREATE INDEX IF NOT EXISTS idx_users_github_id ON users(github_id) WHERE github_id != ''`,
			`CREATE TABLE IF NOT EXISTS sessions (
				id VARCHAR(64) PRIMARY KEY,
				user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				expires_at DATETIME NOT NULL,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
		},
	},
	{
		version: 2,
		name:    "create product_categories",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS product_categories (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name VARCHAR(100) NOT NULL,
				parent_id INTEGER REFERENCES product_categories(id),
				description TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_product_categories_parent_name
				ON product_categories(COALESCE(parent_id, 0), name)`,
		},
	},
	{
		version: 3,
		name:    "create products, variants, and category relations",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS products (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name VARCHAR(100) NOT NULL,
				description TEXT NOT NULL,
				price REAL NOT NULL CHECK (price > 0),
				discount_percent INTEGER NOT NULL DEFAULT 100 CHECK (discount_percent BETWEEN 0 AND 100),
				seller_id INTEGER NOT NULL REFERENCES users(id),
				has_variants INTEGER NOT NULL DEFAULT 0,
				rating_avg REAL NOT NULL DEFAULT 0,
				rating_count INTEGER NOT NULL DEFAULT 0,
				sales_count INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_products_seller_id ON products(seller_id)`,
			`CREATE TABLE IF NOT EXISTS product_variants (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				product_id INTEGER NOT NULL REFERENCES products(id),
				size VARCHAR(50) NOT NULL DEFAULT '',
				color VARCHAR(50) NOT NULL DEFAULT '',
				stock INTEGER NOT NULL DEFAULT 0,
				sku VARCHAR(120) NOT NULL UNIQUE
			)`,
			`CREATE INDEX IF NOT EXISTS idx_product_variants_product_id ON product_variants(product_id)`,
			`CREATE TABLE IF NOT EXISTS product_category_relations (
				product_id INTEGER NOT NULL REFERENCES products(id),
				category_id INTEGER NOT NULL REFERENCES product_categories(id),
				PRIMARY KEY (product_id, category_id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_pcr_category_id ON product_category_relations(category_id)`,
		},
	},
	{
		version: 4,
		name:    "create product_reviews and rating triggers",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS product_reviews (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				product_id INTEGER NOT NULL REFERENCES products(id),
				user_id INTEGER NOT NULL REFERENCES users(id),
				rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
				comment TEXT NOT NULL DEFAULT '',
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE (product_id, user_id)
			)`,
			// The three triggers keep products.rating_avg / rating_count in
			// step with product_reviews no matter which statement touched the
			// table. The average is stored rounded to one decimal; COALESCE
			// resets it to 0 when the last review goes.
			`CREATE TRIGGER IF NOT EXISTS trg_reviews_after_insert
				AFTER INSERT ON product_reviews
			BEGIN
				UPDATE products SET
					rating_count = (SELECT COUNT(*) FROM product_reviews WHERE product_id = NEW.product_id),
					rating_avg = ROUND(COALESCE((SELECT AVG(rating) FROM product_reviews WHERE product_id = NEW.product_id), 0), 1)
				WHERE id = NEW.product_id;
			END`,
			`CREATE TRIGGER IF NOT EXISTS trg_reviews_after_update
				AFTER UPDATE ON product_reviews
			BEGIN
				UPDATE products SET
					rating_count = (SELECT COUNT(*) FROM product_reviews WHERE product_id = NEW.product_id),
					rating_avg = ROUND(COALESCE((SELECT AVG(rating) FROM product_reviews WHERE product_id = NEW.product_id), 0), 1)
				WHERE id = NEW.product_id;
			END`,
			`CREATE TRIGGER IF NOT EXISTS trg_reviews_after_delete
				AFTER DELETE ON product_reviews
			BEGIN
				UPDATE products SET
					rating_count = (SELECT COUNT(*) FROM product_reviews WHERE product_id = OLD.product_id),
					rating_avg = ROUND(COALESCE((SELECT AVG(rating) FROM product_reviews WHERE product_id = OLD.product_id), 0), 1)
				WHERE id = OLD.product_id;
			END`,
		},
	},
	{
		version: 5,
		name:    "seed category tree",
		statements: []string{
			`INSERT OR IGNORE INTO product_categories (id, name, parent_id, description) VALUES
				(1, 'Electronics', NULL, 'Devices and accessories'),
				(2, 'Clothing', NULL, 'Apparel for everyone'),
				(3, 'Home', NULL, 'Household goods'),
				(4, 'Computers', 1, 'Desktops and laptops'),
				(5, 'Audio', 1, 'Headphones and speakers'),
				(6, 'Laptops', 4, 'Portable computers'),
				(7, 'Men', 2, ''),
				(8, 'Women', 2, ''),
				(9, 'Kitchen', 3, '')`,
		},
	},
}

// demoSeed inserts a demo seller with sample listings. Applied as its own
// version only when seeding is enabled, so a production database never
// records it and a later enable still takes effect.
var demoSeed = migration{
	version: 6,
	name:    "seed demo catalog",
	statements: []string{
		`INSERT OR IGNORE INTO users (id, email, password_hash, name, nickname, provider) VALUES
			(1, 'demo-seller@example.com', '', 'Demo Seller', 'demo', 'local')`,
		`INSERT OR IGNORE INTO products (id, name, description, price, discount_percent, seller_id, has_variants) VALUES
			(1, 'Classic Cotton Tee', 'A plain cotton t-shirt that goes with everything you own.', 399, 85, 1, 1),
			(2, 'Wireless Earbuds', 'Compact earbuds with a charging case and passable battery life.', 1490, 100, 1, 0)`,
		`INSERT OR IGNORE INTO product_variants (product_id, color, size, stock, sku) VALUES
			(1, 'White', 'M', 10, '1-White-M'),
			(1, 'White', 'L', 6, '1-White-L'),
			(1, 'Black', 'M', 4, '1-Black-M'),
			(2, '', '', 25, '2-default')`,
		`INSERT OR IGNORE INTO product_category_relations (product_id, category_id) VALUES
			(1, 7), (2, 5)`,
	},
}

// Migrate applies every unapplied migration in version order, each inside
// its own transaction.
func Migrate(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if err := db.WithContext(ctx).Exec(
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	).Error; err != nil {
		return errors.Wrap(err, "failed to create schema_migrations table")
	}

	pending := migrations
	if cfg.SQLite.SeedDemoData {
		pending = append(pending, demoSeed)
	}

	for _, m := range pending {
		applied, err := migrationApplied(ctx, db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := applyMigration(ctx, db, m); err != nil {
			return errors.Wrapf(err, "migration %d (%s) failed", m.version, m.name)
		}

		logger.LogAttrs(ctx, slog.LevelInfo, "applied migration",
			slog.Int("version", m.version),
			slog.String("name", m.name),
		)
	}

	return nil
}

func migrationApplied(ctx context.Context, db *gorm.DB, version int) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).
		Table("schema_migrations").
		Where("version = ?", version).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to read schema_migrations")
	}

	return count > 0, nil
}

func applyMigration(ctx context.Context, db *gorm.DB, m migration) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range m.statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}

		return tx.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
			m.version, m.name,
		).Error
	})
}
