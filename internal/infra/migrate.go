package infra

import (
	"context"
	"fmt"
)

// Schema statements are idempotent: tables are created only when missing and the
// one historical schema change (the embedded reviews column on blogs) is applied
// additively. Nothing here drops or rewrites existing data.
var schemaStatements = []string{
	`--sql 3f1c9a2e-8d54-4b6f-9a31-7c2e51d8b0a4
create table if not exists users (
	id uuid primary key default gen_random_uuid(),
	first_name text not null,
	last_name text not null,
	email text not null unique,
	password text not null,
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now()
);
`,
	`--sql 5b8d20f1-4a3c-47e9-b2d6-90e1a7c3f582
create table if not exists bios (
	id uuid primary key default gen_random_uuid(),
	user_id uuid not null unique references users(id) on delete cascade,
	bio text not null default '',
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now()
);
`,
	`--sql 7e2a61cd-95b8-4f03-8c47-1db9e4a6f230
create table if not exists blogs (
	id uuid primary key default gen_random_uuid(),
	title text not null,
	description text not null default '',
	content text not null default '',
	date date not null default current_date,
	category text not null default '',
	image_url text not null default '',
	created_at timestamptz not null default now(),
	updated_at timestamptz not null default now()
);
`,
	`--sql 9c4f83b2-1e67-4da5-a019-6f8b2c5d7e91
create table if not exists donations (
	id uuid primary key default gen_random_uuid(),
	amount numeric(12,2) not null,
	frequency text not null default 'one-time',
	email text not null,
	card_last4 text not null,
	cardholder_name text not null,
	country text not null,
	payment_status text not null default 'completed',
	created_at timestamptz not null default now()
);
`,
	`--sql b6d15e08-73af-42c1-95e3-2a8c4f0d6b79
create table if not exists payment_methods (
	id uuid primary key default gen_random_uuid(),
	donation_id uuid not null references donations(id) on delete cascade,
	card_type text not null default '',
	card_number_hash text not null,
	expiry_month text not null,
	expiry_year text not null,
	cvv_hash text not null,
	created_at timestamptz not null default now()
);
`,
	`--sql d8a927c4-50e1-4b38-87f6-3c9d1e5a2408
create table if not exists volunteers (
	id uuid primary key default gen_random_uuid(),
	first_name text not null,
	last_name text not null,
	email text not null unique,
	phone text not null,
	interest text not null,
	availability text not null,
	experience text not null default '',
	created_at timestamptz not null default now()
);
`,
	// Reviews began life as a separate concept; the embedded column arrived later,
	// so it is applied as an additive change for databases created before it.
	`--sql f0b38d56-62c9-4ea7-b154-8e7a3f9c0d12
alter table blogs add column if not exists reviews jsonb not null default '[]'::jsonb;
`,
}

// Migrate ensures the schema exists. It runs before the server accepts traffic;
// callers treat an error as fatal.
func Migrate(ctx context.Context, exec SQLExecutor) error {
	for _, stmt := range schemaStatements {
		if _, err := exec.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
