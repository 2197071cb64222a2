package visitor

import "github.com/viant/treewalk/document"

// ObjectVisitorOf creates a visitor over document object entries in insertion order
func ObjectVisitorOf(obj *document.Object) Visitor[string, any] {
	return func(f func(key string, element any) (bool, error)) error {
		for _, entry := range obj.Entries() {
			continueVisit, err := f(entry.Key, entry.Value)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}
