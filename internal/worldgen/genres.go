package worldgen

// Genres are the bundled adventures offered when no narrative file is
// supplied. The excerpts are public-domain openings chosen because the
// heuristics in this package know how to mine them.
var Genres = []Genre{
	{
		Title:       "The Whale",
		Description: "A melancholy narrator turns to the sea.",
		Narrative: `Call me Ishmael. Some years ago - never mind how long precisely - having
little or no money in my purse, and nothing particular to interest me on
shore, I thought I would sail about a little and see the watery part of
the world. It is a way I have of driving off the spleen and regulating
the circulation. Whenever I find myself growing grim about the mouth;
whenever it is a damp, drizzly November in my soul; then, I account it
high time to get to sea as soon as I can.`,
	},
	{
		Title:       "Down the Rabbit-Hole",
		Description: "A hurried rabbit, a sleepy riverbank, and a sudden fall.",
		Narrative: `Alice was beginning to get very tired of sitting by her sister on the
bank, and of having nothing to do. Suddenly a White Rabbit with pink
eyes ran close by her. The Rabbit actually took a watch out of its
waistcoat-pocket, and looked at it, and then hurried on, muttering that
it would be late. Burning with curiosity, she ran across the field after
it, and fortunately was just in time to see it pop down a large
rabbit-hole under the hedge.`,
	},
	{
		Title:       "The Northern Enterprise",
		Description: "An ambitious expedition writes home from the icy north.",
		Narrative: `You will rejoice to hear that no disaster has accompanied the
commencement of an enterprise which you have regarded with such evil
forebodings. I arrived here yesterday, and my first task is to assure my
dear sister of my welfare. I am already far north of London, and as I
walk in the streets of Petersburgh, I feel a cold northern breeze play
upon my cheeks, which braces my nerves and fills me with delight. I have
written a letter to Mrs. Saville, and a bowl of lather, a mirror and a
razor wait on the washstand.`,
	},
	{
		Title:       "The Alchemist's Study",
		Description: "A locked chest, a cryptic book, and a hidden key.",
		Narrative: `The alchemist's study had not been disturbed in a century. Dust lay
thick on every surface, and the air smelled of old paper and something
sharper beneath it. An iron-bound chest crouched in the corner, and on
the lectern a leather-bound book waited, its clasp undone, as though the
room itself expected a reader.`,
	},
}
