/*
Package namebook keeps per-game scroll title assignments in SQLite, the
way Rogue fixes a random title for every scroll kind at the start of a
game and remembers which ones the player has identified.

A Book wraps a database connection and a scroll.Generator. Creating a
game rolls one fresh title per kind inside a transaction; the
assignments then stay stable for the life of the game and can be marked
identified one kind at a time. Call SetupSchema once on a new database
before opening a Book on it.
*/
package namebook
