/*
Package response interprets raw IMAP4rev1 server output.

A buffer holding one or more complete response lines is tokenized with the record
package, then mapped into the types of the mailbox package: mailbox names from LIST
and LSUB, message attributes from FETCH, capability sets, and the mailbox status sent
in answer to SELECT or EXAMINE. Two line-oriented extractors handle SEARCH results
and AUTHENTICATE continuation payloads.

Unilateral responses (RECENT, EXISTS, FETCH and EXPUNGE, see RFC 3501 section 7) may
be interleaved with the response to any command: list mappers skip them instead of
failing.

Every function is all-or-nothing: on error, nothing parsed so far is returned.

See https://tools.ietf.org/html/rfc3501#section-7 for the server responses.
*/
package response
