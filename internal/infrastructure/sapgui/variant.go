package sapgui

import (
	"fmt"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// Small typed wrappers over IDispatch property access. The scripting API
// reports missing properties as COM errors, which callers either propagate
// or treat as "component does not have this property".

func stringProperty(d *ole.IDispatch, name string) (string, error) {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return "", err
	}
	defer v.Clear()
	return v.ToString(), nil
}

func intProperty(d *ole.IDispatch, name string) (int, error) {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return 0, err
	}
	defer v.Clear()
	switch value := v.Value().(type) {
	case int32:
		return int(value), nil
	case int64:
		return int(value), nil
	case int:
		return value, nil
	default:
		return 0, fmt.Errorf("property %s is not an integer", name)
	}
}

func boolProperty(d *ole.IDispatch, name string) (bool, error) {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return false, err
	}
	defer v.Clear()
	b, ok := v.Value().(bool)
	if !ok {
		return false, fmt.Errorf("property %s is not a bool", name)
	}
	return b, nil
}

func dispProperty(d *ole.IDispatch, name string) (*ole.IDispatch, error) {
	v, err := oleutil.GetProperty(d, name)
	if err != nil {
		return nil, err
	}
	disp := v.ToIDispatch()
	if disp == nil {
		v.Clear()
		return nil, fmt.Errorf("property %s is not an object", name)
	}
	return disp, nil
}

// childCount reads Children.Count of a container component.
func childCount(d *ole.IDispatch) (int, error) {
	children, err := dispProperty(d, "Children")
	if err != nil {
		return 0, err
	}
	defer children.Release()
	return intProperty(children, "Count")
}

// childAt resolves Children(index), the indexed default accessor of a
// GuiComponentCollection.
func childAt(d *ole.IDispatch, index int) (*ole.IDispatch, error) {
	v, err := oleutil.GetProperty(d, "Children", index)
	if err != nil {
		return nil, err
	}
	child := v.ToIDispatch()
	if child == nil {
		v.Clear()
		return nil, fmt.Errorf("child %d is not an object", index)
	}
	return child, nil
}

// elementAt resolves GuiCollection.ElementAt(index) for plain collections
// such as GuiGridView.ColumnOrder.
func elementAt(d *ole.IDispatch, index int) (*ole.VARIANT, error) {
	return oleutil.CallMethod(d, "ElementAt", index)
}

func collectionCount(d *ole.IDispatch) (int, error) {
	return intProperty(d, "Count")
}
