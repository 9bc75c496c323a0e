package sqlinline

const QListBlogs = `--sql 8b9c0d1e-2f3a-4b4c-5d6e-7f8091021324
select id, title, description, content, date, category, image_url, reviews
from blogs
order by date desc, created_at desc;
`

const QSelectBlogByID = `--sql 9c0d1e2f-3a4b-4c5d-6e7f-809102132435
select id, title, description, content, date, category, image_url, reviews
from blogs
where id = $1::uuid;
`

const QInsertBlog = `--sql 0d1e2f3a-4b5c-4d6e-7f80-910213243546
insert into blogs(title, description, content, date, category, image_url, reviews)
values ($1::text, $2::text, $3::text, $4::date, $5::text, $6::text, '[]'::jsonb)
returning id, date;
`

// QAppendBlogReview appends one review atomically in a single statement, so two
// concurrent reviewers can never overwrite each other's entry.
const QAppendBlogReview = `--sql 1e2f3a4b-5c6d-4e7f-8091-021324354657
update blogs
set reviews = coalesce(reviews, '[]'::jsonb) || $2::jsonb, updated_at = now()
where id = $1::uuid
returning reviews;
`
