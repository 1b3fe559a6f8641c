package list

import (
	"fmt"
)

func ExampleNewSinglyLinkedList() {
	sll := NewSinglyLinkedList[int]()
	sll.PushBack(2)
	sll.PushFront(1)
	sll.PushBack(3)
	fmt.Println(sll, sll.Len())
	v, _ := sll.PopFront()
	fmt.Println(v, sll)
	// Output:
	// (1, 2, 3) 3
	// 1 (2, 3)
}

func ExampleSinglyLinkedList_SwapByValue() {
	flights := NewSinglyLinkedList[string]()
	flights.PushFront("MSP")
	flights.PushBack("ATL")
	flights.PushBack("BOS")
	flights.PushFront("LAX")
	fmt.Println(flights)

	fmt.Println(flights.SwapByValue("LAX", "MSP"))
	fmt.Println(flights)

	cloned := flights.Clone()
	fmt.Println(cloned.Equal(flights))

	cloned.SwapByValue("LAX", "MSP")
	fmt.Println(cloned)
	fmt.Println(flights)
	fmt.Println(cloned.Equal(flights))

	// Output:
	// (LAX, MSP, ATL, BOS)
	// swapped
	// (MSP, LAX, ATL, BOS)
	// true
	// (LAX, MSP, ATL, BOS)
	// (MSP, LAX, ATL, BOS)
	// false
}
