package sqlinline

const QInsertVolunteer = `--sql 6d7e8f90-0112-4324-3546-5768798a9bac
insert into volunteers(first_name, last_name, email, phone, interest, availability, experience)
values ($1::text, $2::text, $3::text, $4::text, $5::text, $6::text, $7::text)
returning id;
`
