package sqlinline

const QSelectUserWithBio = `--sql 6f7a8b9c-0d1e-4f2a-3b4c-5d6e7f809102
select u.id, u.first_name, u.last_name, u.email, coalesce(b.bio, '') as bio
from users u
left join bios b on b.user_id = u.id
where u.id = $1::uuid;
`

const QUpsertBio = `--sql 7a8b9c0d-1e2f-4a3b-4c5d-6e7f80910213
insert into bios(user_id, bio)
values ($1::uuid, $2::text)
on conflict (user_id) do update
set bio = excluded.bio, updated_at = now();
`
