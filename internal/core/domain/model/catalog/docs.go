// Package catalog provides read-only snapshots of restaurant and menu state owned
// by the catalog collaborator. The order core resolves restaurants and dishes
// through these types when creating and pricing orders; it never mutates them.
//
// The package includes:
//   - Restaurant: identity plus the owner notified of new pending orders
//   - Dish: base price and the option definitions customers select against
//   - DishOption / OptionChoice: flat-surcharge and choice-group customizations
package catalog
