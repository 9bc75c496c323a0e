package sqlinline

const QSelectUserIDByEmail = `--sql 1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d
select id
from users
where email = $1::text;
`

const QInsertUser = `--sql 2b3c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d6e
insert into users(first_name, last_name, email, password)
values ($1::text, $2::text, $3::text, $4::text)
returning id;
`

const QSelectUserByEmail = `--sql 3c4d5e6f-7a8b-4c9d-0e1f-2a3b4c5d6e7f
select id, first_name, last_name, email, password
from users
where email = $1::text;
`

const QSelectUserPassword = `--sql 4d5e6f7a-8b9c-4d0e-1f2a-3b4c5d6e7f80
select password
from users
where id = $1::uuid;
`

const QUpdateUserPassword = `--sql 5e6f7a8b-9c0d-4e1f-2a3b-4c5d6e7f8091
update users
set password = $2::text, updated_at = now()
where id = $1::uuid;
`
