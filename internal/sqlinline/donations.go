package sqlinline

const QInsertDonation = `--sql 2f3a4b5c-6d7e-4f80-9102-132435465768
insert into donations(amount, frequency, email, card_last4, cardholder_name, country)
values ($1::numeric, $2::text, $3::text, $4::text, $5::text, $6::text)
returning id;
`

const QInsertPaymentMethod = `--sql 3a4b5c6d-7e8f-4091-0213-243546576879
insert into payment_methods(donation_id, card_type, card_number_hash, expiry_month, expiry_year, cvv_hash)
values ($1::uuid, $2::text, $3::text, $4::text, $5::text, $6::text);
`

const QSelectDonationByID = `--sql 4b5c6d7e-8f90-4102-1324-35465768798a
select id, amount, frequency, email, card_last4, cardholder_name, country, payment_status, created_at
from donations
where id = $1::uuid;
`

const QListDonationsByEmail = `--sql 5c6d7e8f-9001-4213-2435-465768798a9b
select id, amount, frequency, email, card_last4, cardholder_name, country, payment_status, created_at
from donations
where lower(email) = lower($1::text)
order by created_at desc;
`
