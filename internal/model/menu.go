package model

// MenuItemCollection is the MongoDB collection holding menu item documents.
const MenuItemCollection = "menu"

// Ingredient is a component of a menu item, embedded in the menu document
// as an element of the "ingredients" array.
type Ingredient struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// MenuItem is a dish on the menu, stored as a single document in the "menu"
// collection. The bson tags are the document mapping: ID becomes the document
// _id, Name is stored under the legacy "itemName" field, and Ingredients is a
// nested array queryable via "ingredients.name".
//
// Cost is in cents so documents round-trip without floating point drift.
type MenuItem struct {
	ID               string       `bson:"_id" json:"id"`
	Name             string       `bson:"itemName" json:"name"`
	Cost             int64        `bson:"cost" json:"cost"`
	MinutesToPrepare int          `bson:"minutesToPrepare" json:"minutes_to_prepare"`
	Ingredients      []Ingredient `bson:"ingredients" json:"ingredients"`
	PhotoPath        string       `bson:"photoPath,omitempty" json:"photo_path,omitempty"`
}

// IngredientCount is one row of the ingredient analysis: how many menu items
// use the named ingredient. Produced by the database's MapReduce engine.
type IngredientCount struct {
	Name  string `bson:"_id" json:"name"`
	Count int    `bson:"value" json:"count"`
}
